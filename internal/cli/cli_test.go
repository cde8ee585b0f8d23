// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the carscout command line interface.
package cli

import "testing"

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParseArgs_DefaultIsTUI(t *testing.T) {
	cmd, _ := ParseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("ParseArgs(nil) = %v, want CmdTUI", cmd)
	}
}

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"ask", []string{"ask", "toyota"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"history", []string{"history"}, CmdHistory},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"tui explicit", []string{"tui"}, CmdTUI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgs_AskQueryAndFilters(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "golf", "gti", "--max-price", "30000", "--min-year=2018", "--location", "Cork"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Query != "golf gti" {
		t.Errorf("Query = %q", args.Query)
	}
	if args.MaxPrice != "30000" {
		t.Errorf("MaxPrice = %q", args.MaxPrice)
	}
	if args.MinYear != "2018" {
		t.Errorf("MinYear = %q", args.MinYear)
	}
	if args.Location != "Cork" {
		t.Errorf("Location = %q", args.Location)
	}
}

func TestParseArgs_UnknownCommandBecomesAsk(t *testing.T) {
	cmd, args := ParseArgs([]string{"toyota", "corolla", "under", "20k"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "toyota corolla under 20k" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	_, args := ParseArgs([]string{"--json", "-q", "status"})
	if !args.JSON || !args.Quiet {
		t.Errorf("flags not parsed: %+v", args)
	}
}

func TestParseArgs_HistoryFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"history", "--limit", "5"})
	if cmd != CmdHistory || args.Limit != 5 {
		t.Errorf("cmd=%v limit=%d", cmd, args.Limit)
	}

	_, args = ParseArgs([]string{"history", "--clear"})
	if args.Subcommand != "clear" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
}

// =============================================================================
// EXIT CODE TESTS
// =============================================================================

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(nil); got != ExitSuccess {
		t.Errorf("GetExitCode(nil) = %d", got)
	}
	if got := GetExitCode(ErrMissingQuery); got != ExitUsageError {
		t.Errorf("usage error exit code = %d", got)
	}
}
