// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent provides the HTTP client for the external car-search
// agent service.
//
// The agent accepts a user's query (plus optional structured filters and a
// session ID) and replies with a markdown message, sometimes accompanied
// by pre-structured listings and sources. When the structured shape is
// missing, Normalize falls back to the interpret package, which recovers
// listing data from the message text.
//
// The client never parses anything itself; transport failures surface as
// typed errors that the presentation layer turns into a retry-prompting
// conversation message.
package agent
