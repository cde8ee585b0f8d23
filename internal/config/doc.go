// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for carscout.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. Locations, in order of precedence:
//   - $CARSCOUT_CONFIG
//   - ~/.carscout/config.toml
//   - Built-in defaults
//
// Agent and UI settings can be watched for changes and reloaded live; the
// site registry section is applied once at startup only, because the
// registry is immutable for the life of the process.
package config
