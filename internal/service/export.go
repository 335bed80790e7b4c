// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/enpass-cli/internal/crypto"
	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/internal/store"
	"github.com/MKhiriev/enpass-cli/models"
)

// wrongKeyThreshold is the minimum number of processed cards before a 100%
// padding-failure rate is reported as a likely wrong password instead of a
// series of per-card failures.
const wrongKeyThreshold = 8

// Summary counts the outcome of one export run.
type Summary struct {
	// Exported is the number of cards decrypted, decoded, and emitted.
	Exported int
	// Failed is the number of cards that failed to decrypt or parse.
	Failed int
}

// ExportService drives the vault decryption pipeline: it derives the record
// key material once, then streams every card through decrypt -> decode and
// hands the results to a [CardSink] in vault order. It never reorders,
// buffers, or deduplicates.
type ExportService struct {
	reader store.VaultReader
	cipher crypto.VaultCipherService
	policy FailurePolicy
	trace  TraceFunc
	logger *logger.Logger
}

// NewExportService wires an [ExportService]. trace may be nil.
func NewExportService(reader store.VaultReader, cipher crypto.VaultCipherService, policy FailurePolicy, trace TraceFunc, log *logger.Logger) *ExportService {
	return &ExportService{
		reader: reader,
		cipher: cipher,
		policy: policy,
		trace:  trace,
		logger: log,
	}
}

// Run executes one full export. Key derivation happens exactly once and must
// succeed before any card is read; derivation and reader errors abort the
// run unconditionally. Per-card failures follow the configured
// [FailurePolicy] and are always surfaced — either as the returned error
// (PolicyAbort) or as warn-level log entries counted in the summary
// (PolicySkip).
func (s *ExportService) Run(ctx context.Context, version models.FormatVersion, filter models.CardFilter, sink CardSink) (Summary, error) {
	identity, err := s.reader.Identity(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read identity: %w", err)
	}

	km, err := s.cipher.DeriveKeyMaterial(identity, version)
	if err != nil {
		return Summary{}, fmt.Errorf("derive key material: %w", err)
	}

	var (
		summary         Summary
		processed       int
		paddingFailures int
		lastRecordErr   error
	)

	err = s.reader.ForEachCard(ctx, filter, func(card models.EncryptedCard) error {
		processed++

		decrypted, recErr := s.decryptCard(card, km)
		if recErr != nil {
			summary.Failed++
			lastRecordErr = recErr
			if errors.Is(recErr, models.ErrBadPadding) {
				paddingFailures++
			}

			if s.policy == PolicyAbort {
				return recErr
			}

			s.logger.Warn().
				Str("uuid", card.UUID).
				Str("title", card.Title).
				Err(recErr).
				Msg("skipping card")
			return nil
		}

		if emitErr := sink.Emit(decrypted); emitErr != nil {
			return emitErr
		}
		summary.Exported++
		return nil
	})
	if err != nil {
		return summary, err
	}

	// Every single card failing the padding check is the signature of a
	// wrong key, not of per-card corruption.
	if processed >= wrongKeyThreshold && paddingFailures == processed {
		return summary, fmt.Errorf("%w: %v", ErrLikelyWrongPassword, lastRecordErr)
	}

	return summary, nil
}

// decryptCard runs one card through both fallible stages. Any failure is
// wrapped in a [models.RecordError] so the caller can report which card
// broke.
func (s *ExportService) decryptCard(card models.EncryptedCard, km models.KeyMaterial) (models.Card, error) {
	plaintext, err := s.cipher.DecryptRecord(card.Data, km)
	if err != nil {
		return models.Card{}, &models.RecordError{UUID: card.UUID, Title: card.Title, Err: err}
	}

	if s.trace != nil {
		s.trace(card.UUID, len(plaintext))
	}

	tree, err := s.cipher.DecodeRecord(plaintext)
	if err != nil {
		return models.Card{}, &models.RecordError{UUID: card.UUID, Title: card.Title, Err: err}
	}

	return models.Card{
		ID:       card.ID,
		UUID:     card.UUID,
		Title:    card.Title,
		Subtitle: card.Subtitle,
		Deleted:  card.Deleted,
		Trashed:  card.Trashed,
		Type:     card.Type,
		Category: card.Category,
		Data:     tree,
	}, nil
}
