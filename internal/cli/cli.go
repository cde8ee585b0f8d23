// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for carscout.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool // Output in JSON format

	// Command-specific
	Query      string
	Subcommand string

	// Search filters (ask command)
	Make     string
	Model    string
	Location string
	MaxPrice string
	MinYear  string
	MaxYear  string

	// History
	Limit int

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `carscout - chat-style search for Irish car listings

Carscout talks to a search agent that scans CarZone, DoneDeal, Cars
Ireland, Adverts.ie and CarsIreland.ie, and renders the replies with
structured listing details and source attribution.

Usage:
  carscout                   Start TUI (default)
  carscout ask "query"       Run a single search
  carscout chat              Interactive chat (plain terminal)
  carscout status, s         Show agent and history status
  carscout history           List recent searches
  carscout version           Show version
  carscout help              Show this help

Ask Flags:
  --make NAME        Filter by manufacturer
  --model NAME       Filter by model
  --location AREA    Filter by county or town
  --max-price N      Price ceiling in euro
  --min-year YYYY    Oldest acceptable year
  --max-year YYYY    Newest acceptable year
  --json             Print the normalized result as JSON

History Flags:
  --limit N          Number of entries to show (default: 20)
  --clear            Delete all recorded searches

Global Flags:
  -q, --quiet        Minimal output
  -v, --verbose      Debug output
  --json             Output in JSON format

Environment:
  CARSCOUT_CONFIG      Config file path (default ~/.carscout/config.toml)
  CARSCOUT_AGENT_URL   Agent base URL override

Examples:
  carscout ask "automatic diesel SUV under 25k in Cork"
  carscout ask "golf gti" --max-price 30000 --min-year 2018
  carscout ask "ev with long range" --json
  carscout chat
  carscout history --limit 10

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("carscout version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse for
// testability.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parseAskArgs(&parsedArgs, remaining)
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "history":
		parseHistoryArgs(&parsedArgs, remaining)
		return CmdHistory, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command, treat the whole line as an ask query
		parseAskArgs(&parsedArgs, append([]string{cmd}, remaining...))
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	parsedArgs := Args{Limit: 20}

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseAskArgs parses ask command specific arguments.
func parseAskArgs(args *Args, remaining []string) {
	var query []string

	takeValue := func(i *int) string {
		if *i+1 < len(remaining) {
			*i++
			return remaining[*i]
		}
		return ""
	}

	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]

		switch {
		case arg == "--make":
			args.Make = takeValue(&i)
		case arg == "--model":
			args.Model = takeValue(&i)
		case arg == "--location":
			args.Location = takeValue(&i)
		case arg == "--max-price":
			args.MaxPrice = takeValue(&i)
		case arg == "--min-year":
			args.MinYear = takeValue(&i)
		case arg == "--max-year":
			args.MaxYear = takeValue(&i)
		case strings.HasPrefix(arg, "--make="):
			args.Make = strings.TrimPrefix(arg, "--make=")
		case strings.HasPrefix(arg, "--model="):
			args.Model = strings.TrimPrefix(arg, "--model=")
		case strings.HasPrefix(arg, "--location="):
			args.Location = strings.TrimPrefix(arg, "--location=")
		case strings.HasPrefix(arg, "--max-price="):
			args.MaxPrice = strings.TrimPrefix(arg, "--max-price=")
		case strings.HasPrefix(arg, "--min-year="):
			args.MinYear = strings.TrimPrefix(arg, "--min-year=")
		case strings.HasPrefix(arg, "--max-year="):
			args.MaxYear = strings.TrimPrefix(arg, "--max-year=")
		case !strings.HasPrefix(arg, "-"):
			query = append(query, arg)
		}
	}

	args.Query = strings.Join(query, " ")
}

// parseHistoryArgs parses history command specific arguments.
func parseHistoryArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]

		switch {
		case arg == "--clear":
			args.Subcommand = "clear"
		case arg == "--limit":
			if i+1 < len(remaining) {
				i++
				fmt.Sscanf(remaining[i], "%d", &args.Limit)
			}
		case strings.HasPrefix(arg, "--limit="):
			fmt.Sscanf(strings.TrimPrefix(arg, "--limit="), "%d", &args.Limit)
		}
	}
	if args.Limit <= 0 {
		args.Limit = 20
	}
}

// =============================================================================
// COMMAND DISPATCH HELPERS
// =============================================================================

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) {
	if err := HandleAskCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	if err := HandleChatCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
