// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Session-fatal errors. No key can be derived once one of these is
// returned, so the whole run aborts.
var (
	// ErrMalformedIdentity indicates the identity info blob is too short to
	// contain the IV and salt.
	ErrMalformedIdentity = errors.New("malformed identity: info blob too short")

	// ErrUnsupportedFormatVersion indicates an Enpass format whose
	// data-encryption scheme this tool does not implement. Decrypting such
	// a vault with Enpass 5 parameters would silently produce garbage, so
	// it is rejected up front.
	ErrUnsupportedFormatVersion = errors.New("unsupported Enpass format version")
)

// Per-record errors. The caller chooses whether one of these skips the card
// or aborts the run; they are never swallowed silently.
var (
	// ErrInvalidCiphertextLength indicates a card payload whose length is
	// zero or not a multiple of the AES block size.
	ErrInvalidCiphertextLength = errors.New("ciphertext length is not a positive multiple of the block size")

	// ErrBadPadding indicates PKCS#7 padding validation failed after
	// decryption. This is the primary signal of a wrong master password or
	// wrong format version.
	ErrBadPadding = errors.New("invalid PKCS#7 padding")

	// ErrPayloadFormat indicates the decrypted payload is not valid JSON.
	ErrPayloadFormat = errors.New("decrypted payload is not valid JSON")
)

// RecordError wraps a per-record failure with the identity of the card that
// triggered it, so callers can report which record failed without aborting
// the whole run.
type RecordError struct {
	UUID  string
	Title string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("card %s (%q): %v", e.UUID, e.Title, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
