// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/model"
	"github.com/jeranaias/carscout-tui/internal/storage"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles incoming Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - chromeHeight
		m.input.Width = msg.Width - 4
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == StateSearching {
			m.refreshViewport()
		}
		return m, cmd

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case SearchErrorMsg:
		return m.handleSearchError(msg)

	case AgentStatusMsg:
		m.agentHealthy = msg.Healthy
		m.agentVersion = msg.Version
		return m, nil

	case ConversationSavedMsg:
		if msg.Err != nil {
			return m, tea.Batch(flashStatus("Save failed: "+msg.Err.Error()), clearStatusAfter(4*time.Second))
		}
		return m, tea.Batch(flashStatus("Saved as "+msg.ID), clearStatusAfter(4*time.Second))

	case ConversationLoadedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, storage.ErrConversationNotFound) {
				return m, tea.Batch(flashStatus("No saved conversations"), clearStatusAfter(4*time.Second))
			}
			return m, tea.Batch(flashStatus("Load failed: "+msg.Err.Error()), clearStatusAfter(4*time.Second))
		}
		m.conversation = msg.Conversation
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, tea.Batch(flashStatus("Conversation loaded"), clearStatusAfter(4*time.Second))

	case ConfigReloadedMsg:
		return m.applyConfig(msg)

	case StatusFlashMsg:
		m.statusMsg = msg.Text
		return m, nil

	case ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	// Everything else feeds the focused input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.ClearInput):
		m.input.SetValue("")
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit dispatches the typed line: slash commands act locally,
// anything else becomes a search.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		m.input.SetValue("")
		return m.handleSlashCommand(text)
	}

	if m.state == StateSearching {
		// One search at a time; the agent keys context off the session.
		return m, tea.Batch(flashStatus("Still searching..."), clearStatusAfter(2*time.Second))
	}

	m.input.SetValue("")
	m.session.Touch()

	m.conversation.Add(model.NewUserMessage(text))
	placeholder := m.conversation.Add(model.NewLoadingMessage())

	m.state = StateSearching
	m.loadingMsgID = placeholder.ID
	m.searchStart = time.Now()
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, performSearch(m.client, m.assembler, m.session.ID(), text, placeholder.ID)
}

// handleSlashCommand executes a local /command.
func (m Model) handleSlashCommand(text string) (Model, tea.Cmd) {
	cmd := strings.ToLower(strings.Fields(text)[0])

	switch cmd {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/clear":
		m.conversation.Clear()
		m.refreshViewport()
		return m, nil

	case "/new":
		m.conversation = model.NewConversation()
		m.session.Reset()
		m.refreshViewport()
		return m, tea.Batch(flashStatus("New session started"), clearStatusAfter(4*time.Second))

	case "/save":
		if m.store == nil {
			return m, tea.Batch(flashStatus("Persistence is disabled"), clearStatusAfter(4*time.Second))
		}
		if m.conversation.Len() == 0 {
			return m, tea.Batch(flashStatus("Nothing to save"), clearStatusAfter(4*time.Second))
		}
		return m, saveConversation(m.store, storage.FromConversation(m.conversation))

	case "/load":
		if m.store == nil {
			return m, tea.Batch(flashStatus("Persistence is disabled"), clearStatusAfter(4*time.Second))
		}
		return m, loadConversation(m.store)

	case "/help":
		m.conversation.Add(model.NewAssistantMessage(helpResponse()))
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	default:
		return m, tea.Batch(flashStatus("Unknown command "+cmd), clearStatusAfter(4*time.Second))
	}
}

// =============================================================================
// SEARCH RESULT HANDLING
// =============================================================================

func (m Model) handleSearchResult(msg SearchResultMsg) (Model, tea.Cmd) {
	m.state = StateReady
	m.loadingMsgID = ""
	m.session.Touch()

	reply := model.NewAssistantMessage(msg.Response)
	if !m.conversation.Replace(msg.MessageID, reply) {
		m.conversation.Add(reply)
	}
	m.refreshViewport()
	m.viewport.GotoBottom()

	var cmds []tea.Cmd
	if m.hist != nil {
		cmds = append(cmds, recordSearch(m.hist, msg.Query, msg.Response))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSearchError(msg SearchErrorMsg) (Model, tea.Cmd) {
	m.state = StateError
	m.loadingMsgID = ""
	m.lastError = msg.Err.Error()

	errMsg := model.NewErrorMessage(humanizeError(msg.Err))
	if !m.conversation.Replace(msg.MessageID, errMsg) {
		m.conversation.Add(errMsg)
	}
	m.state = StateReady
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, checkAgent(m.client)
}

// humanizeError turns a client error into a sentence worth showing.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, agent.ErrUnavailable):
		return "The search service is not reachable. Check that it is running, then try again."
	case errors.Is(err, agent.ErrTimeout):
		return "The search took too long and was cancelled. Try a more specific query."
	case errors.Is(err, agent.ErrRateLimited):
		return "Too many searches in a short time. Wait a moment before trying again."
	default:
		return "The search failed: " + err.Error()
	}
}

// applyConfig adopts settings that can change at runtime. The site
// registry is fixed at startup; only presentation and client settings
// follow a reload.
func (m Model) applyConfig(msg ConfigReloadedMsg) (Model, tea.Cmd) {
	cfg := msg.Config
	if cfg == nil {
		return m, nil
	}
	m.badges.ShowIcons = cfg.UI.ShowSourceIcons
	m.refreshViewport()
	return m, tea.Batch(flashStatus("Configuration reloaded"), clearStatusAfter(4*time.Second))
}
