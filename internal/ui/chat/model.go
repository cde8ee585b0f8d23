// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the carscout TUI.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/history"
	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/model"
	"github.com/jeranaias/carscout-tui/internal/session"
	"github.com/jeranaias/carscout-tui/internal/storage"
	"github.com/jeranaias/carscout-tui/internal/ui/components"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady     State = iota // Ready for input
	StateSearching              // A search is in flight
	StateError                  // Showing an error
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	conversation *model.Conversation
	session      *session.Manager

	// Search pipeline
	client    *agent.Client
	assembler *interpret.Assembler

	// Persistence (either may be nil when disabled)
	store *storage.ConversationStore
	hist  *history.Store

	// In-flight search tracking
	loadingMsgID string
	searchStart  time.Time

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	card     *components.ListingCard
	badges   *components.SourceBadges
	renderer *glamour.TermRenderer

	// Key bindings
	keyMap KeyMap

	// Status
	agentHealthy bool
	agentVersion string
	statusMsg    string
	lastError    string
}

// Options carries the wiring the chat view needs from main.
type Options struct {
	Config *config.Config
	Client *agent.Client
	Store  *storage.ConversationStore
	Hist   *history.Store
}

// New creates a new chat model.
func New(theme *styles.Theme, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Describe the car you're looking for..."
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cfg.UI.WordWrap),
	)
	if err != nil {
		// Plain text fallback, view.go handles nil
		renderer = nil
	}

	badges := components.NewSourceBadges(theme)
	badges.ShowIcons = cfg.UI.ShowSourceIcons

	registry := cfg.Registry()

	return Model{
		state:        StateReady,
		theme:        theme,
		conversation: model.NewConversation(),
		session:      session.NewManager(),
		client:       opts.Client,
		assembler:    interpret.NewAssembler(registry),
		store:        opts.Store,
		hist:         opts.Hist,
		viewport:     vp,
		input:        ti,
		spinner:      sp,
		card:         components.NewListingCard(theme),
		badges:       badges,
		renderer:     renderer,
		keyMap:       DefaultKeyMap(),
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		checkAgent(m.client),
	)
}

// Conversation exposes the live conversation (for saving on quit).
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// SessionID returns the current search session identifier.
func (m Model) SessionID() string {
	return m.session.ID()
}
