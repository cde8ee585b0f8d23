// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the carscout TUI.
//
// The two carscout-specific components are the listing card, a bordered
// panel laying out the structured fields recovered from an agent reply,
// and the source badge row attributing a reply to the listing websites
// it came from. Both render to plain strings so the chat view can place
// them under the markdown reply text.
package components
