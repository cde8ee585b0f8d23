// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the carscout command line interface.
//
// The default command launches the TUI; ask runs a one-shot search,
// chat is a line-based REPL for terminals where the TUI is unwanted,
// status probes the agent, and history lists recent searches.
package cli
