// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the carscout TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// =============================================================================
// LISTING CARD
// =============================================================================

// ListingCard renders the structured fields of one car listing as a
// bordered panel. Only populated fields get a row; a details value with
// every field empty renders to an empty string.
type ListingCard struct {
	theme *styles.Theme
}

// NewListingCard creates a listing card renderer.
func NewListingCard(theme *styles.Theme) *ListingCard {
	return &ListingCard{theme: theme}
}

// Render returns the card for the given details, or "" when there is
// nothing to show.
func (c *ListingCard) Render(d *interpret.ListingDetails) string {
	if d == nil || d.IsZero() {
		return ""
	}

	t := c.theme
	var rows []string

	title := cardTitle(d)
	if title != "" {
		rows = append(rows, t.CardTitle.Render(title))
	}

	addRow := func(label, value string, style lipgloss.Style) {
		if value == "" {
			return
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			t.CardLabel.Render(label),
			style.Render(value),
		))
	}

	addRow("Year", d.Year, t.CardValue)
	addRow("Price", d.Price, t.CardPrice)
	addRow("Monthly from", d.MonthlyFrom, t.CardValue)
	addRow("Mileage", d.Mileage, t.CardValue)
	addRow("Location", d.Location, t.CardValue)
	addRow("Details", d.Description, t.CardValue)
	addRow("Listing", d.URL, t.CardURL)

	if len(rows) == 0 {
		return ""
	}
	return t.CardBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// cardTitle builds the headline from make and model, either of which
// may be absent.
func cardTitle(d *interpret.ListingDetails) string {
	parts := make([]string, 0, 2)
	if d.Make != "" {
		parts = append(parts, d.Make)
	}
	if d.Model != "" {
		parts = append(parts, d.Model)
	}
	return strings.Join(parts, " ")
}
