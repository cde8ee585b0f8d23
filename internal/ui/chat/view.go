// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/model"
)

// chromeHeight is the vertical space the header, input area, and status
// bar take away from the viewport.
const chromeHeight = 7

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat interface.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.theme.App.Render(b.String())
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("carscout")
	subtitle := m.theme.HeaderSubtitle.Render("Irish car search")
	header := title + "  " + subtitle
	if m.width > 0 {
		return m.theme.Header.Width(m.width - 2).Render(header)
	}
	return m.theme.Header.Render(header)
}

func (m Model) renderInput() string {
	return m.theme.InputContainer.Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		return m.theme.StatusBar.Render(m.statusMsg)
	}

	agentPart := "agent: offline"
	if m.agentHealthy {
		agentPart = "agent: online"
		if m.agentVersion != "" {
			agentPart += " (" + m.agentVersion + ")"
		}
	}

	sessionPart := "session: " + shortID(m.session.ID())

	hints := strings.Join([]string{
		m.theme.ShortcutKey.Render("enter") + m.theme.ShortcutDesc.Render(" search"),
		m.theme.ShortcutKey.Render("/help") + m.theme.ShortcutDesc.Render(" commands"),
		m.theme.ShortcutKey.Render("ctrl+c") + m.theme.ShortcutDesc.Render(" quit"),
	}, "  ")

	return m.theme.StatusBar.Render(agentPart + "  |  " + sessionPart + "  |  " + hints)
}

// shortID abbreviates a UUID for the status bar.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// =============================================================================
// CONVERSATION RENDERING
// =============================================================================

// refreshViewport rebuilds the viewport content from the conversation.
func (m *Model) refreshViewport() {
	var parts []string
	for _, msg := range m.conversation.Messages {
		parts = append(parts, m.renderMessage(msg))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
}

func (m *Model) renderMessage(msg *model.Message) string {
	ts := m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
	name := msg.Kind.DisplayName()

	switch msg.Kind {
	case model.KindUser:
		label := m.theme.InputPrompt.Render(name) + " " + ts
		return label + "\n" + m.theme.UserBubble.Render(msg.Content)

	case model.KindLoading:
		elapsed := ""
		if !m.searchStart.IsZero() {
			elapsed = " " + m.theme.Timestamp.Render("("+time.Since(m.searchStart).Round(time.Second).String()+")")
		}
		return m.spinner.View() + " " + m.theme.SearchingText.Render(msg.Content) + elapsed

	case model.KindError:
		title := m.theme.ErrorTitle.Render("Search failed")
		return m.theme.ErrorBox.Render(title + "\n" + msg.Content)

	default: // assistant
		label := m.theme.HeaderTitle.Render(name) + " " + ts
		body := m.renderMarkdown(msg.Content)

		sections := []string{label, m.theme.AssistantBubble.Render(body)}
		if card := m.card.Render(msg.Details); card != "" {
			sections = append(sections, card)
		}
		if badges := m.badges.Render(msg.Sources); badges != "" {
			sections = append(sections, badges)
		}
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
}

// renderMarkdown renders reply markdown for terminal display. Returns
// the original content if rendering fails or the renderer is unavailable.
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// =============================================================================
// HELP
// =============================================================================

// helpResponse is shown for /help as an ordinary assistant reply.
func helpResponse() interpret.NormalizedResponse {
	return interpret.NormalizedResponse{
		Text: strings.TrimSpace(`
**Commands**

- /save - save this conversation
- /load - load the most recent saved conversation
- /new - start a fresh search session
- /clear - clear the screen, keeping the session
- /quit - exit

Type anything else to search. Example: *"automatic diesel SUV under 25k in Cork"*
`),
	}
}
