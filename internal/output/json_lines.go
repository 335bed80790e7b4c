// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package output provides CardSink implementations for the export pipeline.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/enpass-cli/models"
)

// JSONLinesWriter emits one compact JSON document per card, newline
// terminated, in the order cards are received. It implements
// service.CardSink.
type JSONLinesWriter struct {
	encoder *json.Encoder
}

// NewJSONLinesWriter wraps w. The caller keeps ownership of w and closes it
// after the run.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{encoder: json.NewEncoder(w)}
}

// Emit writes card as a single JSON line.
func (j *JSONLinesWriter) Emit(card models.Card) error {
	if err := j.encoder.Encode(card); err != nil {
		return fmt.Errorf("write card %s: %w", card.UUID, err)
	}
	return nil
}

// CollectSink gathers cards into memory. Used by the browse and copy
// commands, which need the full set before presenting anything.
type CollectSink struct {
	Cards []models.Card
}

// Emit appends card to the in-memory collection.
func (c *CollectSink) Emit(card models.Card) error {
	c.Cards = append(c.Cards, card)
	return nil
}
