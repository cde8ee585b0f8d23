// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from the
// free-text markdown replies of the upstream search agent.
//
// The agent's output format is not contractually fixed, so everything in
// this package is best-effort: a fixed set of fields is extracted with
// ordered textual patterns, markdown headings split the reply into
// sections, and source links are resolved against the sites registry.
// Missing or malformed pieces degrade field-by-field; no function here
// returns an error or panics on arbitrary input.
//
// The pipeline is:
//
//	raw text -> Segment -> {Extractor -> details; source links -> sources}
//	         -> Assembler -> NormalizedResponse
//
// All operations are pure functions of their input plus the registry
// snapshot, so they are safe to run concurrently without coordination.
package interpret
