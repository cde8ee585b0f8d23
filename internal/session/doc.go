// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the identity and activity of one search session.
//
// The agent protocol groups related searches under a session ID so the
// service can keep conversational context. A session lives for the life
// of one TUI run or one chat REPL; Reset starts a fresh one when the
// user clears the conversation.
package session
