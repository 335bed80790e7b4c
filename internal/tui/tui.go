// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive browse mode: a filterable list of
// decrypted cards with a detail view, sensitive-value masking, and
// copy-to-clipboard.
package tui

import (
	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Browse opens the card browser over an already decrypted card set and
// blocks until the user quits.
func Browse(cards []models.Card, log *logger.Logger) error {
	model := newBrowseModel(cards)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("browse ui failed")
		return err
	}

	return nil
}
