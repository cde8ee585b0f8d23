// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sites holds the registry of recognized car-listing websites.
package sites

import (
	"log"
	"net/url"
	"strings"
)

// =============================================================================
// REGISTRY ENTRY
// =============================================================================

// Entry describes one recognized listing website.
type Entry struct {
	// Name is the display name shown on source badges (e.g. "DoneDeal").
	Name string `toml:"name" json:"name"`

	// Domain is the registrable domain used for matching (e.g. "donedeal.ie").
	// Matching is against the URL's hostname with any leading "www." removed.
	Domain string `toml:"domain" json:"domain"`

	// BaseURL is the canonical site URL used for synthesized sources.
	BaseURL string `toml:"base_url" json:"base_url"`

	// Icon is the icon reference for the site (empty = no icon).
	Icon string `toml:"icon" json:"icon,omitempty"`
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is the static table of recognized listing websites.
//
// A Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	entries []Entry
}

// defaultEntries are the listing sites recognized out of the box.
var defaultEntries = []Entry{
	{Name: "CarZone", Domain: "carzone.ie", BaseURL: "https://www.carzone.ie", Icon: "carzone"},
	{Name: "DoneDeal", Domain: "donedeal.ie", BaseURL: "https://www.donedeal.ie", Icon: "donedeal"},
	{Name: "Cars Ireland", Domain: "cars.ie", BaseURL: "https://www.cars.ie", Icon: "carsireland"},
	{Name: "Adverts.ie", Domain: "adverts.ie", BaseURL: "https://www.adverts.ie", Icon: "adverts"},
	{Name: "CarsIreland.ie", Domain: "carsireland.ie", BaseURL: "https://www.carsireland.ie", Icon: "carsireland"},
}

// Default returns a registry with the built-in listing sites.
func Default() *Registry {
	return New(defaultEntries)
}

// New creates a registry from the given entries. Entries with an empty
// domain are skipped. The entry slice is copied, so callers may reuse theirs.
func New(entries []Entry) *Registry {
	r := &Registry{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Domain == "" {
			continue
		}
		e.Domain = strings.ToLower(strings.TrimPrefix(e.Domain, "www."))
		r.entries = append(r.entries, e)
	}
	return r
}

// WithExtra returns a new registry containing this registry's entries plus
// the given extras. Extras with a domain already present override the
// built-in entry for that domain.
func (r *Registry) WithExtra(extras []Entry) *Registry {
	merged := make([]Entry, 0, len(r.entries)+len(extras))
	overridden := make(map[string]bool, len(extras))
	for _, e := range extras {
		overridden[strings.ToLower(strings.TrimPrefix(e.Domain, "www."))] = true
	}
	for _, e := range r.entries {
		if !overridden[e.Domain] {
			merged = append(merged, e)
		}
	}
	merged = append(merged, extras...)
	return New(merged)
}

// Entries returns a copy of the registry's entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve maps a URL to a known listing site, or nil for an unknown site.
//
// The hostname is matched after stripping a leading "www." label; a host
// equal to a known domain or ending in "." + domain matches, so subdomains
// like m.donedeal.ie resolve to the DoneDeal entry.
//
// Resolve never fails: a malformed URL is logged and treated as no match.
func (r *Registry) Resolve(rawURL string) *Entry {
	u, err := url.Parse(rawURL)
	if err != nil {
		log.Printf("sites: unparseable url %q: %v", rawURL, err)
		return nil
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}
	host = strings.TrimPrefix(host, "www.")

	for i := range r.entries {
		e := &r.entries[i]
		if host == e.Domain || strings.HasSuffix(host, "."+e.Domain) {
			return e
		}
	}
	return nil
}
