// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - History command handler for carscout CLI.
//
// Handles "carscout history", which lists recent searches from the
// local SQLite store, and "carscout history --clear".
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/util"
)

// HandleHistory handles the "history" command.
func HandleHistory(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	hist := openHistory(cfg)
	if hist == nil {
		return errors.New("search history is disabled in the configuration")
	}
	defer hist.Close()

	ctx := context.Background()

	if args.Subcommand == "clear" {
		if err := hist.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	entries, err := hist.Recent(ctx, args.Limit)
	if err != nil {
		return err
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}

	statusPrinter.Printf("%d recent searches:\n\n", len(entries))
	for _, e := range entries {
		line := e.Timestamp.Format("2006-01-02 15:04") + "  " + util.TruncateRunes(e.Query, 50)
		fmt.Println(line)

		var found []string
		if e.Make != "" || e.Model != "" {
			found = append(found, strings.TrimSpace(e.Make+" "+e.Model))
		}
		if e.Year != "" {
			found = append(found, e.Year)
		}
		if e.Price != "" {
			found = append(found, e.Price)
		}
		if len(found) > 0 {
			fmt.Println("    -> " + strings.Join(found, ", "))
		}
	}
	return nil
}
