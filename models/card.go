// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedCard is one raw row of the vault's Cards table. Data holds the
// PKCS#7-padded AES-256-CBC ciphertext of the card payload; all other fields
// are stored in the clear by the vault schema (the container encryption
// covers them at the page level).
type EncryptedCard struct {
	ID       int64
	UUID     string
	Title    string
	Subtitle string
	Deleted  bool
	Trashed  bool
	Type     string
	Category string
	Data     []byte
}

// Card is a fully decrypted card ready for output. Data is the schema-free
// JSON tree carried by the encrypted payload; its fields (per-type field
// lists, icons, and so on) are opaque to this tool and passed through
// unchanged.
type Card struct {
	ID       int64  `json:"id"`
	UUID     string `json:"uuid"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Deleted  bool   `json:"deleted"`
	Trashed  bool   `json:"trashed"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Data     any    `json:"data"`
}

// CardFilter narrows the set of card rows streamed from the vault.
// The zero value excludes trashed and deleted cards and applies no
// category filter.
type CardFilter struct {
	// Category, when non-empty, restricts rows to a single card category.
	Category string
	// IncludeTrashed keeps cards the user moved to the trash.
	IncludeTrashed bool
	// IncludeDeleted keeps cards marked as deleted.
	IncludeDeleted bool
}
