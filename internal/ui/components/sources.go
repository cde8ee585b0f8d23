// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the carscout TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// =============================================================================
// SOURCE BADGES
// =============================================================================

// SourceBadges renders the row of listing-site attributions under a reply.
type SourceBadges struct {
	theme *styles.Theme

	// ShowIcons toggles the icon glyph in front of each site name.
	ShowIcons bool
}

// NewSourceBadges creates a source badge renderer.
func NewSourceBadges(theme *styles.Theme) *SourceBadges {
	return &SourceBadges{theme: theme, ShowIcons: true}
}

// Render returns the badge row, or "" when there are no sources.
// Sources keep their reply order, duplicates included.
func (b *SourceBadges) Render(sources []interpret.Source) string {
	if len(sources) == 0 {
		return ""
	}

	t := b.theme
	parts := []string{t.SourceHeading.Render("Sources:")}

	for _, src := range sources {
		label := src.Name
		if b.ShowIcons && src.Icon != "" {
			label = "• " + label
		}
		// Known sites carry an icon key from the registry; bare link text
		// from unrecognized domains gets the muted badge.
		if src.Icon != "" {
			parts = append(parts, t.SourceBadge.Render(label))
		} else {
			parts = append(parts, t.SourceBadgeUnknown.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
