// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mutecomm/go-sqlcipher/v4"

	"github.com/MKhiriev/enpass-cli/internal/config"
	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/models"
)

// enpass5Pragmas configures SQLCipher for the Enpass 5 container layout.
// kdf_iter here is the container page-cipher KDF iteration count; it is
// unrelated to the fixed 2-iteration PBKDF2 that derives the record key from
// the Identity row.
var enpass5Pragmas = []string{
	"PRAGMA cipher_page_size = 1024;",
	"PRAGMA kdf_iter = 24000;",
	"PRAGMA cipher_hmac_algorithm = HMAC_SHA1;",
	"PRAGMA cipher_kdf_algorithm = PBKDF2_HMAC_SHA1;",
}

// OpenVault opens the Enpass vault file at cfg.Path, keys the SQLCipher
// container with the master password, and applies the Enpass 5 compatibility
// pragmas. The key check is performed up front so a wrong password surfaces
// as [ErrWrongMasterPassword] instead of a scan failure later.
//
// Enpass 6 vaults use a different container layout and record scheme; they
// are rejected with [models.ErrUnsupportedFormatVersion] before anything is
// read, because decrypting them with Enpass 5 parameters silently produces
// garbage.
func OpenVault(ctx context.Context, cfg config.Vault, version models.FormatVersion, log *logger.Logger) (VaultReader, error) {
	if version != models.FormatV5 {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormatVersion, version)
	}

	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("vault file %q: %w", cfg.Path, err)
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	// Pragmas are per-connection; pin the pool to one connection so every
	// later query sees the keyed container.
	conn.SetMaxOpenConns(1)

	if _, err = conn.ExecContext(ctx, fmt.Sprintf("PRAGMA key = '%s';", escapeSQLString(cfg.Password))); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply container key: %w", err)
	}

	for _, pragma := range enpass5Pragmas {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	// First real read of the container. SQLCipher reports a wrong key as
	// "file is not a database" at this point.
	var n int64
	if err = conn.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master;").Scan(&n); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrWrongMasterPassword, err)
	}

	log.Debug().Str("vault", cfg.Path).Int64("objects", n).Msg("vault container unlocked")

	return &vaultReader{db: conn, logger: log}, nil
}

// NewVaultReaderFromDB wraps an already opened and keyed connection.
// Used by tests to run the reader against a mock database.
func NewVaultReaderFromDB(db *sql.DB, log *logger.Logger) VaultReader {
	return &vaultReader{db: db, logger: log}
}

// escapeSQLString doubles single quotes so the password can be embedded in
// the PRAGMA key literal. PRAGMA statements do not support bind parameters.
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
