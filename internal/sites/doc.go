// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sites holds the registry of recognized car-listing websites.
//
// The registry is a small static table mapping listing-site domains to
// display metadata (name, canonical base URL, icon reference). It is built
// once at startup, optionally extended from configuration, and never
// mutated afterwards, so it is safe for unsynchronized concurrent reads.
//
// Resolution is deliberately forgiving: a URL that cannot be parsed or
// whose host matches no known domain resolves to nil, and callers treat
// both cases as "unknown site".
package sites
