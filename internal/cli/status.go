// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command handler for carscout CLI.
//
// Handles "carscout status", which probes the search agent's health
// endpoint and summarizes local state: configured sites, history size,
// saved conversations.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/storage"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// statusPrinter formats counts with digit grouping.
var statusPrinter = message.NewPrinter(language.English)

// StatusData is the JSON shape of the status command output.
type StatusData struct {
	AgentURL      string `json:"agent_url"`
	AgentOnline   bool   `json:"agent_online"`
	AgentVersion  string `json:"agent_version,omitempty"`
	Sites         int    `json:"sites"`
	Searches      int    `json:"searches"`
	Conversations int    `json:"conversations"`
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data := StatusData{
		AgentURL: cfg.Agent.BaseURL,
		Sites:    cfg.Registry().Len(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := clientFromConfig(cfg)
	if health, err := client.CheckHealth(ctx); err == nil {
		data.AgentOnline = health.Status == "ok"
		data.AgentVersion = health.Version
	}

	if hist := openHistory(cfg); hist != nil {
		if n, err := hist.Count(ctx); err == nil {
			data.Searches = n
		}
		hist.Close()
	}

	if store, err := storage.NewConversationStore(); err == nil {
		if metas, err := store.List(); err == nil {
			data.Conversations = len(metas)
		}
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fmt.Println("carscout status")
	fmt.Println()
	if data.AgentOnline {
		label := "agent online at " + data.AgentURL
		if data.AgentVersion != "" {
			label += " (version " + data.AgentVersion + ")"
		}
		fmt.Println(styles.RenderSuccess(label))
	} else {
		fmt.Println(styles.RenderError("agent offline at " + data.AgentURL))
	}
	statusPrinter.Printf("  %d listing sites configured\n", data.Sites)
	statusPrinter.Printf("  %d searches recorded\n", data.Searches)
	statusPrinter.Printf("  %d saved conversations\n", data.Conversations)

	return nil
}
