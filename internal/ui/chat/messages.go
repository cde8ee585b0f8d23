// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface: search lifecycle, agent health, conversation persistence,
// and configuration reload events.
package chat

import (
	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/model"
)

// =============================================================================
// SEARCH MESSAGES
// =============================================================================

// SearchResultMsg delivers the normalized result of a completed search.
type SearchResultMsg struct {
	MessageID string // ID of the loading placeholder to replace
	Query     string
	Response  interpret.NormalizedResponse
}

// SearchErrorMsg signals that a search failed.
type SearchErrorMsg struct {
	MessageID string
	Err       error
}

// =============================================================================
// AGENT MESSAGES
// =============================================================================

// AgentStatusMsg reports the agent health probe result.
type AgentStatusMsg struct {
	Healthy bool
	Version string
	Err     error
}

// =============================================================================
// CONVERSATION MESSAGES
// =============================================================================

// ConversationSavedMsg confirms a save operation.
type ConversationSavedMsg struct {
	ID  string
	Err error
}

// ConversationLoadedMsg delivers a loaded conversation.
type ConversationLoadedMsg struct {
	Conversation *model.Conversation
	Err          error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// StatusFlashMsg shows a transient line in the status bar.
type StatusFlashMsg struct {
	Text string
}

// ClearStatusMsg clears the transient status line.
type ClearStatusMsg struct{}
