// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the carscout TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// =============================================================================
// LISTING CARD TESTS
// =============================================================================

func TestListingCard_RenderFields(t *testing.T) {
	card := NewListingCard(styles.NewTheme())

	out := card.Render(&interpret.ListingDetails{
		Make:     "Toyota",
		Model:    "Corolla",
		Year:     "2019",
		Price:    "€18,500",
		Location: "Dublin",
	})

	for _, want := range []string{"Toyota Corolla", "2019", "€18,500", "Dublin"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
	// Absent fields get no row.
	if strings.Contains(out, "Mileage") {
		t.Error("card shows a row for an absent field")
	}
}

func TestListingCard_Empty(t *testing.T) {
	card := NewListingCard(styles.NewTheme())

	if out := card.Render(nil); out != "" {
		t.Errorf("Render(nil) = %q, want empty", out)
	}
	if out := card.Render(&interpret.ListingDetails{}); out != "" {
		t.Errorf("Render(zero) = %q, want empty", out)
	}
}

func TestListingCard_TitleWithoutMake(t *testing.T) {
	card := NewListingCard(styles.NewTheme())

	out := card.Render(&interpret.ListingDetails{Model: "Golf", Year: "2020"})
	if !strings.Contains(out, "Golf") {
		t.Errorf("card missing model-only title:\n%s", out)
	}
}

// =============================================================================
// SOURCE BADGE TESTS
// =============================================================================

func TestSourceBadges_Render(t *testing.T) {
	badges := NewSourceBadges(styles.NewTheme())

	out := badges.Render([]interpret.Source{
		{Name: "CarZone", URL: "https://www.carzone.ie", Icon: "carzone"},
		{Name: "somegarage.example", URL: "https://somegarage.example/x"},
	})

	if !strings.Contains(out, "Sources:") {
		t.Error("badge row missing heading")
	}
	if !strings.Contains(out, "CarZone") || !strings.Contains(out, "somegarage.example") {
		t.Errorf("badge row missing a source:\n%s", out)
	}
}

func TestSourceBadges_Empty(t *testing.T) {
	badges := NewSourceBadges(styles.NewTheme())
	if out := badges.Render(nil); out != "" {
		t.Errorf("Render(nil) = %q, want empty", out)
	}
}

func TestSourceBadges_PreservesOrderAndDuplicates(t *testing.T) {
	badges := NewSourceBadges(styles.NewTheme())
	badges.ShowIcons = false

	out := badges.Render([]interpret.Source{
		{Name: "DoneDeal", URL: "https://www.donedeal.ie", Icon: "donedeal"},
		{Name: "CarZone", URL: "https://www.carzone.ie", Icon: "carzone"},
		{Name: "DoneDeal", URL: "https://www.donedeal.ie", Icon: "donedeal"},
	})

	if strings.Count(out, "DoneDeal") != 2 {
		t.Errorf("duplicate source collapsed:\n%s", out)
	}
	if strings.Index(out, "DoneDeal") > strings.Index(out, "CarZone") {
		t.Errorf("source order not preserved:\n%s", out)
	}
}
