package service

import "github.com/MKhiriev/enpass-cli/models"

// CardSink receives decrypted cards in vault order. Implementations decide
// what "emit" means: write a JSON line, collect into memory for the TUI,
// and so on.
type CardSink interface {
	Emit(card models.Card) error
}

// FailurePolicy selects how the export run reacts to a card that fails to
// decrypt or parse. Key-derivation and reader errors always abort regardless
// of policy.
type FailurePolicy int

const (
	// PolicyAbort stops the run on the first failed card.
	PolicyAbort FailurePolicy = iota
	// PolicySkip logs the failed card and continues with the next one.
	PolicySkip
)

// TraceFunc is an optional debugging hook invoked after each successful
// record decryption. It receives the card UUID and the plaintext length
// only; the plaintext itself is never exposed to logging.
type TraceFunc func(uuid string, plaintextLen int)
