// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

import (
	"regexp"
	"strings"

	"github.com/jeranaias/carscout-tui/internal/sites"
)

// =============================================================================
// URL PATTERNS
// =============================================================================

// urlPatterns are tried in order; the FIRST pattern that matches anywhere in
// the text contributes the listing URL and later patterns are not evaluated.
// Order matters: a markdown link ("[here](...)", "[View Listing](...)") beats
// the labeled-line forms, which beat a bare known-domain URL.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[[^\]]*\]\((https?://[^)\s]+)\)`),
	regexp.MustCompile(`(?i)view the listing:\s*(https?://\S+)`),
	regexp.MustCompile(`(?i)listing url:\s*(https?://\S+)`),
	regexp.MustCompile(`(?i)you can view this car at:\s*(https?://\S+)`),
}

// bareURLPattern finds candidate URLs for the last-resort known-domain check.
var bareURLPattern = regexp.MustCompile(`https?://[^\s)\]<>"]+`)

// =============================================================================
// FIELD PATTERNS
// =============================================================================

// fieldPattern pairs one recoverable field with its pattern and setter.
// Patterns are evaluated independently per field (not mutually exclusive).
type fieldPattern struct {
	name   string
	re     *regexp.Regexp
	assign func(*ListingDetails, string)
}

// labelPattern matches "<label>: <value>" case-insensitively, with the label
// optionally wrapped in markdown emphasis markers ("**Make:** Toyota",
// "*Make*: Toyota", "Make: Toyota"). The value runs to the end of the line
// or the next emphasis marker.
func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\*{0,2}` + label + `(?::\*{0,2}|\*{1,2}:)[ \t]*([^*\n\r]+)`)
}

// fieldPatterns is the explicit ordered list of recoverable fields. Adding a
// new recognized field means adding one row here; nothing else changes.
var fieldPatterns = []fieldPattern{
	{"make", labelPattern(`make`), func(d *ListingDetails, v string) { d.Make = v }},
	{"model", labelPattern(`model`), func(d *ListingDetails, v string) { d.Model = v }},
	{"year", labelPattern(`year`), func(d *ListingDetails, v string) { d.Year = v }},
	{"price", labelPattern(`price`), func(d *ListingDetails, v string) { d.Price = v }},
	{"location", labelPattern(`location`), func(d *ListingDetails, v string) { d.Location = v }},
	{"description", labelPattern(`description`), func(d *ListingDetails, v string) { d.Description = v }},
	{"monthly_from", labelPattern(`monthly\s+from`), func(d *ListingDetails, v string) { d.MonthlyFrom = v }},
	{"mileage", labelPattern(`mileage`), func(d *ListingDetails, v string) { d.Mileage = v }},
}

// =============================================================================
// EXTRACTOR
// =============================================================================

// Extractor recovers labeled fields and a best-guess listing URL from a
// block of text. The registry is needed only for the bare-URL fallback
// (a URL with no markdown or label context counts only if its host is a
// known listing site).
type Extractor struct {
	registry *sites.Registry
}

// NewExtractor creates a field extractor backed by the given registry.
// A nil registry falls back to the built-in site table.
func NewExtractor(registry *sites.Registry) *Extractor {
	if registry == nil {
		registry = sites.Default()
	}
	return &Extractor{registry: registry}
}

// Extract recovers zero or more fields from text. Fields whose pattern does
// not match are left empty, never set to a blank value; matched values are
// trimmed of surrounding whitespace. No numeric validation happens here.
func (e *Extractor) Extract(text string) ListingDetails {
	var d ListingDetails

	for _, fp := range fieldPatterns {
		m := fp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			fp.assign(&d, v)
		}
	}

	d.URL = e.extractURL(text)
	return d
}

// extractURL applies the ordered URL patterns with first-match-wins
// semantics, then falls back to any bare URL on a known listing domain.
func (e *Extractor) extractURL(text string) string {
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return trimURL(m[1])
		}
	}

	for _, raw := range bareURLPattern.FindAllString(text, -1) {
		u := trimURL(raw)
		if e.registry.Resolve(u) != nil {
			return u
		}
	}
	return ""
}

// trimURL drops trailing sentence punctuation that the agent's prose tends
// to glue onto bare URLs.
func trimURL(u string) string {
	return strings.TrimRight(u, ".,;:!?")
}
