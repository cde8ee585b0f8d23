// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

import (
	"regexp"
	"strings"
)

// =============================================================================
// SECTION KINDS
// =============================================================================

// SectionKind classifies what a markdown section is used for.
type SectionKind int

const (
	// SectionOther sections are not specially interpreted; they remain part
	// of the unaltered display text only.
	SectionOther SectionKind = iota

	// SectionDetails sections are routed to the field extractor.
	SectionDetails

	// SectionSources sections are routed to source-link extraction.
	SectionSources
)

// =============================================================================
// CLASSIFIER
// =============================================================================

// SectionClassifier decides how a section is routed from its heading text.
//
// Heading-keyword matching is fragile to agent phrasing drift, so it is an
// interface: tests and future revisions can swap in new phrasings without
// touching the link or field patterns.
type SectionClassifier interface {
	Classify(heading string) SectionKind
}

// KeywordClassifier is the default classifier. It matches the phrasings the
// agent currently produces: "Car Details" / "Listing Details" headings for
// detail sections and "Source" / "From" headings for source sections.
type KeywordClassifier struct{}

// Classify implements SectionClassifier.
func (KeywordClassifier) Classify(heading string) SectionKind {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "car details") || strings.Contains(h, "listing details"):
		return SectionDetails
	case strings.Contains(h, "source") || strings.Contains(h, "from"):
		return SectionSources
	default:
		return SectionOther
	}
}

// =============================================================================
// SEGMENTATION
// =============================================================================

// Section is one heading-delimited slice of a reply.
type Section struct {
	// Heading is the heading text with the "#" markers stripped.
	Heading string

	// Content is the full section, heading line included, up to but not
	// including the next heading.
	Content string
}

// headingPattern matches a markdown heading of level 1-3 at line start.
var headingPattern = regexp.MustCompile(`(?m)^#{1,3}[ \t]+(.*)$`)

// Segment splits a reply into sections at every level 1-3 markdown heading.
//
// Text before the first heading is not returned as a section; segmentation
// only locates detail/source sections and never rewrites the display text,
// which callers keep verbatim. Input with no headings yields nil.
func Segment(text string) []Section {
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Heading: strings.TrimSpace(text[m[2]:m[3]]),
			Content: text[start:end],
		})
	}
	return sections
}
