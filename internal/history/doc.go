// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records past car searches in a local SQLite database.
//
// One row is written per completed search: the query, when it ran, and
// the headline listing fields the interpretation engine recovered. The
// store is an optional convenience; every method degrades to a no-op on
// a nil store so callers never branch on whether history is enabled.
package history
