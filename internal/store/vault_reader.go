// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/models"
)

// vaultReader is the SQLCipher-backed implementation of [VaultReader].
type vaultReader struct {
	db     *sql.DB
	logger *logger.Logger
}

// Identity implements [VaultReader]. It reads the Identity table and
// enforces the exactly-one-row invariant of the Enpass 5 format.
func (v *vaultReader) Identity(ctx context.Context) (models.Identity, error) {
	rows, err := v.db.QueryContext(ctx, selectIdentity)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return models.Identity{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
		return models.Identity{}, ErrIdentityNotFound
	}

	var identity models.Identity
	if err = rows.Scan(
		&identity.ID,
		&identity.Version,
		&identity.Signature,
		&identity.SyncUUID,
		&identity.HMACKeyMaterial,
		&identity.Info,
	); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if rows.Next() {
		return models.Identity{}, ErrMultipleIdentities
	}
	if err = rows.Err(); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	// The hash column is key material; log everything but it.
	v.logger.Debug().
		Int64("id", identity.ID).
		Int64("version", identity.Version).
		Str("sync_uuid", identity.SyncUUID).
		Int("info_len", len(identity.Info)).
		Msg("identity row loaded")

	return identity, nil
}

// ForEachCard implements [VaultReader]. Rows are streamed one at a time;
// payload bytes are copied out of the driver's scan buffer before fn runs.
func (v *vaultReader) ForEachCard(ctx context.Context, filter models.CardFilter, fn func(models.EncryptedCard) error) error {
	query, args, err := buildCardsQuery(filter)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var card models.EncryptedCard
		if err = rows.Scan(
			&card.ID,
			&card.UUID,
			&card.Title,
			&card.Subtitle,
			&card.Deleted,
			&card.Trashed,
			&card.Type,
			&card.Category,
			&card.Data,
		); err != nil {
			return fmt.Errorf("%w: %v", ErrScanningRow, err)
		}

		if err = fn(card); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Close implements [VaultReader].
func (v *vaultReader) Close() error {
	return v.db.Close()
}
