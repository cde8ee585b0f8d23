// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot search command handler for carscout CLI.
//
// Handles "carscout ask", which runs a single search against the agent
// and prints the interpreted reply: rendered markdown, a listing detail
// block when fields were recovered, and a source line.
//
// Command: ask
// Short:   Run a single car search
//
// Examples:
//   carscout ask "automatic diesel SUV under 25k in Cork"
//   carscout ask "golf gti" --max-price 30000 --min-year 2018
//   carscout ask "ev with long range" --json
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/interpret"
	"github.com/jeranaias/carscout-tui/internal/session"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	askLabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(14)

	askValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	askPriceStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	askTitleStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	askSourceStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAskCommand runs a single search and prints the result.
func HandleAskCommand(args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return ErrMissingQuery
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := clientFromConfig(cfg)
	asm := interpret.NewAssembler(cfg.Registry())
	sess := session.NewManager()

	if !args.Quiet && !args.JSON {
		fmt.Println("Searching...")
	}

	resp, err := client.Search(context.Background(), agent.SearchRequest{
		SessionID: sess.ID(),
		Query:     query,
		Filters: agent.Filters{
			Make:     args.Make,
			Model:    args.Model,
			Location: args.Location,
			MaxPrice: args.MaxPrice,
			MinYear:  args.MinYear,
			MaxYear:  args.MaxYear,
		},
	})
	if err != nil {
		return err
	}

	normalized := agent.Normalize(resp, asm)

	if hist := openHistory(cfg); hist != nil {
		// History is a convenience; a write failure never fails the search.
		_ = hist.Record(context.Background(), query, normalized)
		hist.Close()
	}

	if args.JSON {
		return printNormalizedJSON(normalized)
	}
	printNormalized(normalized)
	return nil
}

// printNormalized writes the human-readable result.
func printNormalized(n interpret.NormalizedResponse) {
	fmt.Print(renderMarkdown(n.Text))

	if d := n.Details; d != nil {
		fmt.Println()
		if title := strings.TrimSpace(d.Make + " " + d.Model); title != "" {
			fmt.Println(askTitleStyle.Render(title))
		}
		printField("Year", d.Year, askValueStyle)
		printField("Price", d.Price, askPriceStyle)
		printField("Monthly from", d.MonthlyFrom, askValueStyle)
		printField("Mileage", d.Mileage, askValueStyle)
		printField("Location", d.Location, askValueStyle)
		printField("Details", d.Description, askValueStyle)
		printField("Listing", d.URL, askValueStyle)
	}

	if len(n.Sources) > 0 {
		names := make([]string, len(n.Sources))
		for i, s := range n.Sources {
			names[i] = s.Name
		}
		fmt.Println()
		fmt.Println(askSourceStyle.Render("Sources: " + strings.Join(names, ", ")))
	}
}

func printField(label, value string, style lipgloss.Style) {
	if value == "" {
		return
	}
	fmt.Println(askLabelStyle.Render(label) + style.Render(value))
}

// printNormalizedJSON writes the normalized result as indented JSON.
func printNormalizedJSON(n interpret.NormalizedResponse) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}
