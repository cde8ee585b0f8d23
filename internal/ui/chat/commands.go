// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/history"
	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/storage"
)

// =============================================================================
// SEARCH COMMANDS
// =============================================================================

// performSearch runs one agent search off the UI goroutine. The result
// message carries the placeholder ID so update can replace it in place.
func performSearch(client *agent.Client, asm *interpret.Assembler, sessionID, query, placeholderID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(context.Background(), agent.SearchRequest{
			SessionID: sessionID,
			Query:     query,
		})
		if err != nil {
			return SearchErrorMsg{MessageID: placeholderID, Err: err}
		}
		return SearchResultMsg{
			MessageID: placeholderID,
			Query:     query,
			Response:  agent.Normalize(resp, asm),
		}
	}
}

// checkAgent probes the agent health endpoint.
func checkAgent(client *agent.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		health, err := client.CheckHealth(ctx)
		if err != nil {
			return AgentStatusMsg{Healthy: false, Err: err}
		}
		return AgentStatusMsg{Healthy: health.Status == "ok", Version: health.Version}
	}
}

// =============================================================================
// PERSISTENCE COMMANDS
// =============================================================================

// saveConversation persists the current conversation.
func saveConversation(store *storage.ConversationStore, stored *storage.StoredConversation) tea.Cmd {
	return func() tea.Msg {
		id, err := store.Save(stored)
		return ConversationSavedMsg{ID: id, Err: err}
	}
}

// loadConversation loads the most recently saved conversation.
func loadConversation(store *storage.ConversationStore) tea.Cmd {
	return func() tea.Msg {
		stored, err := store.LoadByIndex(0)
		if err != nil {
			return ConversationLoadedMsg{Err: err}
		}
		return ConversationLoadedMsg{Conversation: stored.ToConversation()}
	}
}

// recordSearch writes one completed search to the history store.
// Errors are swallowed; history is a convenience, not a feature the
// search flow depends on.
func recordSearch(hist *history.Store, query string, resp interpret.NormalizedResponse) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hist.Record(ctx, query, resp)
		return nil
	}
}

// flashStatus shows a transient status line, cleared after a delay.
func flashStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusFlashMsg{Text: text}
	}
}

// clearStatusAfter clears the status line after d.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
