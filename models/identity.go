// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// FormatVersion identifies the Enpass vault format generation.
type FormatVersion int

const (
	// FormatV5 is the Enpass 5 wallet format (walletx.db). The only format
	// with a fully supported data-encryption scheme.
	FormatV5 FormatVersion = 5
	// FormatV6 is the Enpass 6 vault format. Its data-encryption scheme is
	// different and not supported; it must be rejected before any
	// decryption attempt.
	FormatV6 FormatVersion = 6
)

func (v FormatVersion) String() string {
	switch v {
	case FormatV5:
		return "enpass-5"
	case FormatV6:
		return "enpass-6"
	default:
		return fmt.Sprintf("enpass-unknown(%d)", int(v))
	}
}

// Identity is the single metadata row of the vault's Identity table. It is
// read once per session and carries everything needed to derive the record
// data-encryption key.
type Identity struct {
	// ID is the numeric primary key of the row.
	ID int64

	// Version is the format version stored inside the vault.
	Version int64

	// Signature is the vault signature string.
	Signature string

	// SyncUUID identifies the vault for sync purposes.
	SyncUUID string

	// HMACKeyMaterial is the column named "hash" in the vault schema.
	// Despite the name it is not a digest to verify: its raw bytes key the
	// HMAC-SHA-256 PRF used by the record-key PBKDF2. Treat as opaque key
	// material; never re-hash it.
	HMACKeyMaterial string

	// Info is an opaque metadata blob. Bytes [16:32) hold the AES-CBC IV
	// and bytes [32:48) hold the PBKDF2 salt, so it must be at least 48
	// bytes long.
	Info []byte
}
