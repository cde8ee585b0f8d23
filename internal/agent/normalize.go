// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent provides the HTTP client for the external car-search agent.
package agent

import (
	"strings"

	"github.com/jeranaias/carscout-tui/internal/interpret"
)

// Normalize turns an agent reply into the one shape the presentation layer
// renders.
//
// When the agent sent pre-structured listings or sources, those are used
// as-is (first listing wins; replies describe at most one car in detail).
// Otherwise the message text goes through the interpretation assembler,
// which recovers what it can from the markdown. Either way the display
// text is the agent's message, unchanged.
func Normalize(resp *SearchResponse, asm *interpret.Assembler) interpret.NormalizedResponse {
	if resp == nil {
		return interpret.NormalizedResponse{}
	}
	if len(resp.Listings) == 0 && len(resp.Sources) == 0 {
		return asm.Assemble(resp.Message)
	}

	out := interpret.NormalizedResponse{Text: resp.Message}

	if len(resp.Listings) > 0 {
		d := detailsFromListing(resp.Listings[0])
		if !d.IsZero() {
			out.Details = &d
		}
	}

	for _, s := range resp.Sources {
		if s.URL == "" {
			continue
		}
		name := strings.TrimSpace(s.Name)
		if name == "" {
			if entry := asm.Registry().Resolve(s.URL); entry != nil {
				name = entry.Name
				if s.Icon == "" {
					s.Icon = entry.Icon
				}
			} else {
				name = s.URL
			}
		}
		out.Sources = append(out.Sources, interpret.Source{Name: name, URL: s.URL, Icon: s.Icon})
	}

	if len(out.Sources) == 0 && out.Details != nil {
		out.Sources = fallbackFromURL(out.Details.URL, asm)
	}
	return out
}

// detailsFromListing maps the wire listing onto interpretation details,
// applying the same trimmed/non-empty invariant the extractor guarantees.
func detailsFromListing(l Listing) interpret.ListingDetails {
	return interpret.ListingDetails{
		Make:        strings.TrimSpace(l.Make),
		Model:       strings.TrimSpace(l.Model),
		Year:        strings.TrimSpace(l.Year),
		Price:       strings.TrimSpace(l.Price),
		Location:    strings.TrimSpace(l.Location),
		Description: strings.TrimSpace(l.Description),
		MonthlyFrom: strings.TrimSpace(l.MonthlyFrom),
		Mileage:     strings.TrimSpace(l.Mileage),
		URL:         strings.TrimSpace(l.URL),
	}
}

// fallbackFromURL synthesizes a site-level source from a listing URL, the
// same rule the assembler applies on the unstructured path.
func fallbackFromURL(listingURL string, asm *interpret.Assembler) []interpret.Source {
	if listingURL == "" {
		return nil
	}
	entry := asm.Registry().Resolve(listingURL)
	if entry == nil {
		return nil
	}
	return []interpret.Source{{Name: entry.Name, URL: entry.BaseURL, Icon: entry.Icon}}
}
