// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent provides the HTTP client for the external car-search agent.
package agent

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Filters are optional structured constraints sent alongside the free-text
// query. The agent treats them as hints; carscout never derives them from
// the query text itself (query understanding is the agent's job).
type Filters struct {
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Location string `json:"location,omitempty"`
	MaxPrice string `json:"max_price,omitempty"`
	MinYear  string `json:"min_year,omitempty"`
	MaxYear  string `json:"max_year,omitempty"`
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	SessionID string  `json:"session_id"`
	Query     string  `json:"query"`
	Filters   Filters `json:"filters,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Listing is the agent's pre-structured car record, when it sends one.
// All fields are display strings, matching the loose upstream formatting.
type Listing struct {
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

// WireSource is the agent's pre-structured source citation.
type WireSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// SearchResponse is the body of a successful search call. Listings and
// Sources are optional; an empty pair means the message text is all there
// is, and the interpretation fallback applies.
type SearchResponse struct {
	Message  string       `json:"message"`
	Listings []Listing    `json:"listings,omitempty"`
	Sources  []WireSource `json:"sources,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
