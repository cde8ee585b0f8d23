// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
//
// The view is a Bubble Tea model wrapping one conversation with the
// search agent: the user types a query, a placeholder bubble spins while
// the search runs in a background command, and the reply lands as a
// markdown-rendered assistant bubble with a listing card and source
// badges when the interpretation engine recovered them. Slash commands
// handle persistence (/save, /load) and session control (/new, /clear).
package chat
