// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for carscout.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// LOADING TESTS
// =============================================================================

func TestLoadPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if cfg.Agent.BaseURL != "http://127.0.0.1:8780" {
		t.Errorf("BaseURL = %q, want default", cfg.Agent.BaseURL)
	}
	if cfg.Agent.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %d, want 60", cfg.Agent.TimeoutSeconds)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true by default")
	}
}

func TestLoadPath_ParsesToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[agent]
base_url = "http://search.internal:9000"
timeout_seconds = 30

[ui]
word_wrap = 100

[[sites]]
name = "UsedCarsNI"
domain = "usedcarsni.com"
base_url = "https://www.usedcarsni.com"
icon = "usedcarsni"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if cfg.Agent.BaseURL != "http://search.internal:9000" {
		t.Errorf("BaseURL = %q", cfg.Agent.BaseURL)
	}
	if cfg.Agent.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Agent.TimeoutSeconds)
	}
	// Unset values still fall back to defaults.
	if cfg.Agent.RequestsPerMinute != 30 {
		t.Errorf("RequestsPerMinute = %d, want default 30", cfg.Agent.RequestsPerMinute)
	}
	if cfg.UI.WordWrap != 100 {
		t.Errorf("WordWrap = %d, want 100", cfg.UI.WordWrap)
	}

	reg := cfg.Registry()
	if e := reg.Resolve("https://www.usedcarsni.com/car/1"); e == nil || e.Name != "UsedCarsNI" {
		t.Errorf("config site not in registry: %+v", e)
	}
	// Built-ins survive extension.
	if reg.Resolve("https://www.donedeal.ie/x") == nil {
		t.Error("built-in site lost when extending registry")
	}
}

func TestLoadPath_EnvOverride(t *testing.T) {
	t.Setenv("CARSCOUT_AGENT_URL", "http://10.0.0.5:8780")
	cfg, err := LoadPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if cfg.Agent.BaseURL != "http://10.0.0.5:8780" {
		t.Errorf("BaseURL = %q, want env override", cfg.Agent.BaseURL)
	}
}

func TestLoadPath_InvalidBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[agent]\nbase_url = \"not a url\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPath(path); err == nil {
		t.Error("LoadPath accepted a relative agent base URL")
	}
}

func TestLoadPath_MalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[agent\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPath(path); err == nil {
		t.Error("LoadPath accepted malformed TOML")
	}
}

// =============================================================================
// SAVE / ROUND TRIP
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Agent.BaseURL = "http://localhost:9999"
	cfg.UI.WordWrap = 120
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if loaded.Agent.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q after round trip", loaded.Agent.BaseURL)
	}
	if loaded.UI.WordWrap != 120 {
		t.Errorf("WordWrap = %d after round trip", loaded.UI.WordWrap)
	}
}
