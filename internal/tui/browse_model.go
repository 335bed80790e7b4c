// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/enpass-cli/internal/utils"
	"github.com/MKhiriev/enpass-cli/models"
)

const maskedValue = "••••••••"

type browseModel struct {
	cards    []models.Card
	filtered []models.Card
	idx      int

	filtering   bool
	filterInput textinput.Model

	detail          bool
	detailFieldIdx  int
	revealSensitive bool

	status string
	errMsg string
}

func newBrowseModel(cards []models.Card) browseModel {
	input := textinput.New()
	input.Placeholder = "title or category"
	input.Prompt = "/ "
	input.CharLimit = 64

	return browseModel{
		cards:       cards,
		filtered:    cards,
		filterInput: input,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.filtering {
		return m.updateFiltering(keyMsg)
	}
	if m.detail {
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m browseModel) updateFiltering(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(keyMsg)
	m.applyFilter()
	return m, cmd
}

func (m browseModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	card, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}
	fields := utils.ExtractFields(card.Data)

	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
		m.revealSensitive = false
		m.detailFieldIdx = 0
	case "up":
		if m.detailFieldIdx > 0 {
			m.detailFieldIdx--
		}
	case "down":
		if m.detailFieldIdx < len(fields)-1 {
			m.detailFieldIdx++
		}
	case " ":
		m.revealSensitive = !m.revealSensitive
	case "c":
		if m.detailFieldIdx >= len(fields) {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(fields[m.detailFieldIdx].Value); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("copied %q", fields[m.detailFieldIdx].Label)
	}
	return m, nil
}

func (m browseModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.filtered)-1 {
			m.idx++
		}
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "no cards"
			return m, nil
		}
		m.detail = true
		m.detailFieldIdx = 0
		m.revealSensitive = false
	case "c":
		card, ok := m.current()
		if !ok {
			m.status = "no cards"
			return m, nil
		}
		password, found := utils.FindPassword(utils.ExtractFields(card.Data))
		if !found {
			m.status = "no password field on this card"
			return m, nil
		}
		if err := clipboard.WriteAll(password); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("password of %q copied", card.Title)
	}
	return m, nil
}

func (m *browseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = m.cards
	} else {
		filtered := make([]models.Card, 0, len(m.cards))
		for _, card := range m.cards {
			if strings.Contains(strings.ToLower(card.Title), query) ||
				strings.Contains(strings.ToLower(card.Category), query) {
				filtered = append(filtered, card)
			}
		}
		m.filtered = filtered
	}

	if m.idx >= len(m.filtered) {
		m.idx = len(m.filtered) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m browseModel) current() (models.Card, bool) {
	if m.idx < 0 || m.idx >= len(m.filtered) {
		return models.Card{}, false
	}
	return m.filtered[m.idx], true
}

func (m browseModel) View() string {
	if m.detail {
		return appStyle.Render(m.detailView())
	}
	return appStyle.Render(m.listView())
}

func (m browseModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Enpass cards (%d)", len(m.filtered))))
	b.WriteString("\n\n")

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("nothing matches"))
		b.WriteString("\n")
	}

	for i, card := range m.filtered {
		line := fmt.Sprintf("%s  %s", card.Title, labelStyle.Render(card.Category))
		switch {
		case i == m.idx:
			line = selectedStyle.Render(line)
		case card.Trashed || card.Deleted:
			line = trashedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.writeStatus(&b)
	b.WriteString(helpStyle.Render("↑/↓ move · enter detail · c copy password · / filter · q quit"))
	return b.String()
}

func (m browseModel) detailView() string {
	card, ok := m.current()
	if !ok {
		return helpStyle.Render("no card selected")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(card.Title))
	if card.Subtitle != "" {
		b.WriteString("  " + labelStyle.Render(card.Subtitle))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s / %s · %s", card.Category, card.Type, card.UUID)))
	b.WriteString("\n\n")

	fields := utils.ExtractFields(card.Data)
	if len(fields) == 0 {
		b.WriteString(helpStyle.Render("no structured fields on this card"))
		b.WriteString("\n")
	}

	for i, field := range fields {
		value := field.Value
		if field.Sensitive && !m.revealSensitive {
			value = maskedValue
		}

		line := fmt.Sprintf("%s: %s", labelStyle.Render(field.Label), value)
		if i == m.detailFieldIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.writeStatus(&b)
	b.WriteString(helpStyle.Render("↑/↓ move · space reveal · c copy field · esc back"))
	return b.String()
}

func (m browseModel) writeStatus(b *strings.Builder) {
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
}
