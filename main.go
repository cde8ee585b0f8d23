// carscout TUI - chat-style search for Irish car listings.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/carscout-tui/internal/agent"
	"github.com/jeranaias/carscout-tui/internal/cli"
	"github.com/jeranaias/carscout-tui/internal/config"
	"github.com/jeranaias/carscout-tui/internal/history"
	"github.com/jeranaias/carscout-tui/internal/storage"
	"github.com/jeranaias/carscout-tui/internal/ui/chat"
	"github.com/jeranaias/carscout-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdStatus:
		if err := cli.HandleStatus(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdHistory:
		if err := cli.HandleHistory(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// =============================================================================
// TUI
// =============================================================================

// app is the root Bubble Tea model wrapping the chat view.
type app struct {
	chat chat.Model
}

func (a app) Init() tea.Cmd {
	return a.chat.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.chat.View()
}

func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}

	opts := chat.Options{
		Config: cfg,
		Client: agentClient(cfg),
	}

	if store, err := storage.NewConversationStore(); err == nil {
		opts.Store = store
	} else if args.Verbose {
		log.Printf("conversation store unavailable: %v", err)
	}

	var hist *history.Store
	if cfg.History.Enabled {
		if path, err := cfg.HistoryPath(); err == nil {
			if hist, err = history.Open(path); err != nil && args.Verbose {
				log.Printf("history store unavailable: %v", err)
			}
		}
	}
	opts.Hist = hist
	defer hist.Close()

	p := tea.NewProgram(
		app{chat: chat.New(styles.NewTheme(), opts)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Live config reload: UI settings follow edits to the config file.
	configPath, err := config.DefaultPath()
	if err == nil {
		watcher, werr := config.Watch(configPath, func(updated *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: updated})
		})
		if werr == nil {
			defer watcher.Close()
		} else if args.Verbose {
			log.Printf("config watch unavailable: %v", werr)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// agentClient builds the search client from the loaded configuration.
func agentClient(cfg *config.Config) *agent.Client {
	return agent.NewClientWithConfig(&agent.ClientConfig{
		BaseURL:           cfg.Agent.BaseURL,
		Timeout:           time.Duration(cfg.Agent.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.Agent.MaxRetries,
		RequestsPerMinute: cfg.Agent.RequestsPerMinute,
	})
}
