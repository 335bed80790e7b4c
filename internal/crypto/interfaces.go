package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

import "github.com/MKhiriev/enpass-cli/models"

// VaultCipherService owns the record-level cryptography of an Enpass vault.
// It knows nothing about SQLite, the container encryption, or the CLI; it is
// handed raw bytes and returns raw bytes or structured values.
//
// Pipeline:
//
//	km        = DeriveKeyMaterial(identity, version)   (once per session)
//	plaintext = DecryptRecord(payload, km)             (per card)
//	tree      = DecodeRecord(plaintext)                (per card)
//
// Derivation must complete before any record is decrypted. The three
// operations are pure and hold no shared mutable state, so record-level
// calls may run concurrently once km exists.
type VaultCipherService interface {
	// DeriveKeyMaterial turns the Identity row into the AES-256 key and
	// CBC IV used for every card of the session. Only [models.FormatV5] is
	// supported; [models.FormatV6] fails with
	// [models.ErrUnsupportedFormatVersion] before any cryptographic work.
	DeriveKeyMaterial(identity models.Identity, version models.FormatVersion) (models.KeyMaterial, error)

	// DecryptRecord decrypts one card payload with AES-256-CBC and strips
	// PKCS#7 padding. The payload length must be a positive multiple of
	// the AES block size.
	DecryptRecord(payload []byte, km models.KeyMaterial) ([]byte, error)

	// DecodeRecord parses decrypted payload bytes as a schema-free JSON
	// value. Kept as a separate fallible stage so bad JSON in one card is
	// distinguishable from a systemic wrong-key padding failure.
	DecodeRecord(plaintext []byte) (any, error)
}
