// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

import (
	"github.com/jeranaias/carscout-tui/internal/sites"
)

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler combines segmentation, field extraction and source resolution
// into one normalized result per agent reply.
//
// An Assembler is immutable after construction and safe for concurrent use.
type Assembler struct {
	registry   *sites.Registry
	classifier SectionClassifier
	extractor  *Extractor
}

// NewAssembler creates an assembler with the default keyword classifier.
func NewAssembler(registry *sites.Registry) *Assembler {
	return NewAssemblerWithClassifier(registry, KeywordClassifier{})
}

// NewAssemblerWithClassifier creates an assembler with a custom section
// classifier. A nil registry falls back to the built-in site table.
func NewAssemblerWithClassifier(registry *sites.Registry, classifier SectionClassifier) *Assembler {
	if registry == nil {
		registry = sites.Default()
	}
	if classifier == nil {
		classifier = KeywordClassifier{}
	}
	return &Assembler{
		registry:   registry,
		classifier: classifier,
		extractor:  NewExtractor(registry),
	}
}

// Registry returns the site registry the assembler resolves against.
func (a *Assembler) Registry() *sites.Registry {
	return a.registry
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// Assemble produces a NormalizedResponse for any input string, total and
// without side effects. The raw text is returned unchanged as the display
// text regardless of what the sections yield.
//
// When multiple detail sections exist, the LAST one wins outright: each
// detail section is re-extracted and assigned whole, never merged with an
// earlier one. Source sections are cumulative in document order. When no
// explicit sources exist but a listing URL was recovered, one source is
// synthesized from the URL's registry resolution.
func (a *Assembler) Assemble(raw string) NormalizedResponse {
	var (
		details ListingDetails
		sources []Source
	)

	for _, section := range Segment(raw) {
		switch a.classifier.Classify(section.Heading) {
		case SectionDetails:
			details = a.extractor.Extract(section.Content)
		case SectionSources:
			sources = append(sources, extractSources(section.Content, a.registry)...)
		}
	}

	if len(sources) == 0 {
		sources = fallbackSource(details.URL, a.registry)
	}

	resp := NormalizedResponse{Text: raw, Sources: sources}
	if !details.IsZero() {
		d := details
		resp.Details = &d
	}
	return resp
}
