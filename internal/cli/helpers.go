// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared wiring for carscout CLI commands.
package cli

import (
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/history"
)

// =============================================================================
// AGENT WIRING
// =============================================================================

// clientFromConfig builds an agent client from the loaded configuration.
func clientFromConfig(cfg *config.Config) *agent.Client {
	return agent.NewClientWithConfig(&agent.ClientConfig{
		BaseURL:           cfg.Agent.BaseURL,
		Timeout:           time.Duration(cfg.Agent.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.Agent.MaxRetries,
		RequestsPerMinute: cfg.Agent.RequestsPerMinute,
	})
}

// openHistory opens the history store when enabled, nil otherwise.
// A nil store is inert, so callers never branch.
func openHistory(cfg *config.Config) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		return nil
	}
	return store
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the shared glamour renderer for CLI output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails or renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
