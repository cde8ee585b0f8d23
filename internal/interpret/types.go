// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

// =============================================================================
// LISTING DETAILS
// =============================================================================

// ListingDetails holds the fields recovered from one agent reply.
//
// All fields are display strings kept exactly as the source formatted them
// (price and year are not parsed to numbers; upstream formatting is too
// inconsistent). An empty string means the field was absent; present values
// are always trimmed and non-empty.
type ListingDetails struct {
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        string `json:"year,omitempty"`
	Price       string `json:"price,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	MonthlyFrom string `json:"monthly_from,omitempty"`
	Mileage     string `json:"mileage,omitempty"`
	URL         string `json:"url,omitempty"`
}

// IsZero reports whether no field was recovered.
func (d ListingDetails) IsZero() bool {
	return d == ListingDetails{}
}

// =============================================================================
// SOURCE
// =============================================================================

// Source is a citation linking part of a reply back to a listing website.
//
// Name is the registry display name when the URL resolves to a known site,
// otherwise the literal markdown link text. URL is always non-empty.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// =============================================================================
// NORMALIZED RESPONSE
// =============================================================================

// NormalizedResponse is the assembled result for one agent reply.
//
// Text is the raw reply, unchanged; segmentation never rewrites the
// displayed content. Details is non-nil only when a car/listing details
// section existed and yielded at least one field. Sources is empty only
// when neither explicit source links nor a resolvable listing URL existed.
type NormalizedResponse struct {
	Text    string          `json:"text"`
	Details *ListingDetails `json:"details,omitempty"`
	Sources []Source        `json:"sources,omitempty"`
}
