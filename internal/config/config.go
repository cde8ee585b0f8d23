// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for carscout.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/carscout-tui/internal/sites"
	"github.com/jeranaias/carscout-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete carscout configuration.
type Config struct {
	Version string `toml:"version"`

	// Agent is the external search-agent connection configuration.
	Agent AgentConfig `toml:"agent"`

	// UI holds presentation settings.
	UI UIConfig `toml:"ui"`

	// History configures the local SQLite search history.
	History HistoryConfig `toml:"history"`

	// Sites extends (or overrides, by domain) the built-in listing-site
	// registry. Applied once at startup; edits require a restart.
	Sites []sites.Entry `toml:"sites"`
}

// AgentConfig holds search-agent connection settings.
type AgentConfig struct {
	// BaseURL of the agent service (default: http://127.0.0.1:8780)
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds per search request (default: 60)
	TimeoutSeconds int `toml:"timeout_seconds"`

	// MaxRetries for transient failures (default: 2)
	MaxRetries int `toml:"max_retries"`

	// RequestsPerMinute caps outgoing searches (default: 30)
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// WordWrap column for rendered markdown (default: 80)
	WordWrap int `toml:"word_wrap"`

	// ShowSourceIcons toggles icon glyphs on source badges (default: true)
	ShowSourceIcons bool `toml:"show_source_icons"`
}

// HistoryConfig holds search-history settings.
type HistoryConfig struct {
	// Enabled toggles recording of searches (default: true)
	Enabled bool `toml:"enabled"`

	// Path of the SQLite database (default: ~/.carscout/history.db)
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Agent: AgentConfig{
			BaseURL:           "http://127.0.0.1:8780",
			TimeoutSeconds:    60,
			MaxRetries:        2,
			RequestsPerMinute: 30,
		},
		UI: UIConfig{
			WordWrap:        80,
			ShowSourceIcons: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "", // resolved lazily against the config dir
		},
	}
}

// Dir returns the carscout configuration directory (~/.carscout).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".carscout"), nil
}

// DefaultPath returns the default config file location, honoring the
// CARSCOUT_CONFIG environment variable.
func DefaultPath() (string, error) {
	if p := os.Getenv("CARSCOUT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default path. A missing file is
// not an error: defaults apply. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadPath(path)
}

// LoadPath reads the configuration from an explicit path.
func LoadPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file, defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("CARSCOUT_AGENT_URL"); v != "" {
		c.Agent.BaseURL = v
	}
}

// fillDefaults replaces zero values with the built-in defaults.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Agent.BaseURL == "" {
		c.Agent.BaseURL = def.Agent.BaseURL
	}
	if c.Agent.TimeoutSeconds <= 0 {
		c.Agent.TimeoutSeconds = def.Agent.TimeoutSeconds
	}
	if c.Agent.MaxRetries < 0 {
		c.Agent.MaxRetries = def.Agent.MaxRetries
	}
	if c.Agent.RequestsPerMinute <= 0 {
		c.Agent.RequestsPerMinute = def.Agent.RequestsPerMinute
	}
	if c.UI.WordWrap <= 0 {
		c.UI.WordWrap = def.UI.WordWrap
	}
}

// Validate checks invariants that would otherwise fail deep inside a
// search call.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Agent.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("agent.base_url %q is not an absolute URL", c.Agent.BaseURL)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the given path atomically.
func Save(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Registry builds the site registry: built-in entries extended by the
// config's [[sites]] section.
func (c *Config) Registry() *sites.Registry {
	r := sites.Default()
	if len(c.Sites) > 0 {
		r = r.WithExtra(c.Sites)
	}
	return r
}

// HistoryPath resolves the history database location.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
