package models

// KeyMaterial is the symmetric key and initialization vector derived from
// the Identity row. It is derived exactly once per vault session, reused for
// every card, and must never be persisted or logged.
type KeyMaterial struct {
	// Key is the AES-256 data-encryption key.
	Key [32]byte

	// IV is the AES-CBC initialization vector, taken verbatim from the
	// identity info blob.
	IV [16]byte
}
