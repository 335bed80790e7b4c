package store

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_reader_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/enpass-cli/models"
)

// VaultReader is the container-side collaborator of the decryption pipeline.
// It owns the SQLCipher connection and yields raw bytes; it never decrypts
// record payloads itself.
type VaultReader interface {
	// Identity returns the single row of the vault's Identity table.
	// Zero rows yield [ErrIdentityNotFound], more than one
	// [ErrMultipleIdentities].
	Identity(ctx context.Context) (models.Identity, error)

	// ForEachCard streams card rows matching filter, ordered by title,
	// then trashed, then deleted, calling fn once per row. An error from
	// fn aborts the iteration and is returned unchanged.
	ForEachCard(ctx context.Context, filter models.CardFilter, fn func(models.EncryptedCard) error) error

	// Close releases the underlying database connection.
	Close() error
}
