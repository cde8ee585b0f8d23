// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jeranaias/carscout-tui/internal/sites"
)

// =============================================================================
// ASSEMBLY TESTS
// =============================================================================

func TestAssemble_NoHeadings(t *testing.T) {
	a := NewAssembler(nil)

	inputs := []string{
		"",
		"Sorry, I could not find any cars matching that.",
		"Make: Toyota\nModel: Corolla", // fields outside a details section are ignored
		"plain text with a [link](https://example.com/x)",
	}

	for _, input := range inputs {
		resp := a.Assemble(input)
		if resp.Details != nil {
			t.Errorf("Assemble(%q).Details = %+v, want nil", input, resp.Details)
		}
		if resp.Text != input {
			t.Errorf("Assemble(%q).Text = %q, want input unchanged", input, resp.Text)
		}
	}
}

func TestAssemble_DetailsAndSources(t *testing.T) {
	a := NewAssembler(nil)

	raw := "I found one good match.\n\n" +
		"## Car Details\n" +
		"Price: €20,000\n\n" +
		"## Source\n" +
		"[Check it out](https://cars.ie/ad/9)\n"

	resp := a.Assemble(raw)

	if resp.Text != raw {
		t.Errorf("Text altered by assembly")
	}
	if resp.Details == nil {
		t.Fatal("Details = nil, want price extracted")
	}
	if want := (ListingDetails{Price: "€20,000"}); *resp.Details != want {
		t.Errorf("Details = %+v, want %+v", *resp.Details, want)
	}

	// A resolved source takes the registry name and icon but keeps the
	// link's own URL, not the registry base URL.
	want := []Source{{Name: "Cars Ireland", URL: "https://cars.ie/ad/9", Icon: "carsireland"}}
	if !reflect.DeepEqual(resp.Sources, want) {
		t.Errorf("Sources = %+v, want %+v", resp.Sources, want)
	}
}

func TestAssemble_UnknownSourceKeepsLinkText(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Sources\n[Joe's Autos](https://joesautos.example/ad/1)\n"
	resp := a.Assemble(raw)

	want := []Source{{Name: "Joe's Autos", URL: "https://joesautos.example/ad/1"}}
	if !reflect.DeepEqual(resp.Sources, want) {
		t.Errorf("Sources = %+v, want %+v", resp.Sources, want)
	}
}

func TestAssemble_SourceSectionsAccumulateInOrder(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Source\n[a](https://cars.ie/1)\n" +
		"## More text\nfiller\n" +
		"## From the web\n[b](https://www.donedeal.ie/2)\n[a](https://cars.ie/1)\n"

	resp := a.Assemble(raw)

	// Order preserved, duplicates kept.
	wantURLs := []string{"https://cars.ie/1", "https://www.donedeal.ie/2", "https://cars.ie/1"}
	if len(resp.Sources) != len(wantURLs) {
		t.Fatalf("got %d sources, want %d", len(resp.Sources), len(wantURLs))
	}
	for i, u := range wantURLs {
		if resp.Sources[i].URL != u {
			t.Errorf("source %d URL = %q, want %q", i, resp.Sources[i].URL, u)
		}
	}
}

func TestAssemble_FallbackSourceUsesBaseURL(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Car Details\nMake: Toyota\nListing URL: https://www.donedeal.ie/cars/777\n"
	resp := a.Assemble(raw)

	if len(resp.Sources) != 1 {
		t.Fatalf("got %d sources, want 1 synthesized source", len(resp.Sources))
	}
	src := resp.Sources[0]
	if src.Name != "DoneDeal" {
		t.Errorf("fallback source name = %q, want DoneDeal", src.Name)
	}
	// The synthesized source points at the site, not the listing.
	if src.URL != "https://www.donedeal.ie" {
		t.Errorf("fallback source URL = %q, want site base URL", src.URL)
	}
}

func TestAssemble_NoFallbackForUnknownListingURL(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Car Details\nMake: Ford\n[here](https://unknowndealer.example/ad/1)\n"
	resp := a.Assemble(raw)

	if len(resp.Sources) != 0 {
		t.Errorf("Sources = %+v, want none for unresolvable listing URL", resp.Sources)
	}
	if resp.Details == nil || resp.Details.Make != "Ford" {
		t.Errorf("Details = %+v, want make Ford", resp.Details)
	}
}

func TestAssemble_LastDetailsSectionWins(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Car Details\nMake: Toyota\nModel: Corolla\nPrice: €15,000\n" +
		"## Listing Details\nMake: Kia\nYear: 2022\n"

	resp := a.Assemble(raw)
	if resp.Details == nil {
		t.Fatal("Details = nil")
	}

	// The later section replaces the earlier one whole; nothing is merged.
	want := ListingDetails{Make: "Kia", Year: "2022"}
	if *resp.Details != want {
		t.Errorf("Details = %+v, want %+v (overwrite, not merge)", *resp.Details, want)
	}
}

func TestAssemble_DetailsSectionWithNoFields(t *testing.T) {
	a := NewAssembler(nil)

	raw := "## Car Details\nNothing structured in here at all.\n"
	resp := a.Assemble(raw)
	if resp.Details != nil {
		t.Errorf("Details = %+v, want nil when section yields no fields", resp.Details)
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	a := NewAssembler(nil)

	raw := "Found it!\n## Car Details\n**Make:** Toyota\n**Price:** €20,000\n" +
		"## Source\n[listing](https://www.carzone.ie/l/3)\n"

	first := a.Assemble(raw)
	second := a.Assemble(first.Text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-assembly of unchanged text differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAssemble_CustomClassifier(t *testing.T) {
	reg := sites.Default()
	a := NewAssemblerWithClassifier(reg, headingMap{
		"the car":      SectionDetails,
		"where i look": SectionSources,
	})

	raw := "## The Car\nMake: Opel\n## Where I Look\n[z](https://cars.ie/9)\n"
	resp := a.Assemble(raw)

	if resp.Details == nil || resp.Details.Make != "Opel" {
		t.Errorf("custom classifier did not route details: %+v", resp.Details)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Name != "Cars Ireland" {
		t.Errorf("custom classifier did not route sources: %+v", resp.Sources)
	}
}

// headingMap is a test classifier keyed by exact lower-cased heading.
type headingMap map[string]SectionKind

func (m headingMap) Classify(heading string) SectionKind {
	return m[strings.ToLower(heading)]
}
