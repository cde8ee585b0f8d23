// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for carscout CLI.
//
// Handles "carscout chat", a line-based REPL for terminals where the
// full TUI is unwanted (ssh sessions, scripts, minimal environments).
//
// Command: chat
// Short:   Start an interactive search session
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /new                Start a fresh search session
//   /status, /s         Show session info
//   /quit, /q           Exit chat
//   Ctrl+C, Ctrl+D      Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

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
	chatPromptStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	chatWelcomeStyle = lipgloss.NewStyle().
				Foreground(styles.Teal).
				Bold(true)

	chatInfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.Dir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history to file.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0755); err != nil {
		return
	}
	if f, err := os.Create(c.historyFile); err == nil {
		c.line.WriteHistory(f)
		f.Close()
		os.Chmod(c.historyFile, 0600)
	}
}

// Close releases the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChatCommand runs the interactive chat REPL.
func HandleChatCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := clientFromConfig(cfg)
	asm := interpret.NewAssembler(cfg.Registry())
	sess := session.NewManager()
	hist := openHistory(cfg)
	defer hist.Close()

	cli := NewChatCLI()
	defer cli.Close()

	if !args.Quiet {
		fmt.Println(chatWelcomeStyle.Render("carscout chat"))
		fmt.Println(chatInfoStyle.Render("Describe the car you're looking for. /help for commands, /quit to exit."))
		fmt.Println()
	}

	for {
		input, err := cli.ReadInput(chatPromptStyle.Render("you> "))
		if err != nil {
			// Ctrl+C aborts the prompt, Ctrl+D ends input; both exit.
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if done := handleChatSlash(input, sess); done {
				return nil
			}
			continue
		}

		sess.Touch()
		fmt.Println(chatInfoStyle.Render("searching..."))

		resp, err := client.Search(context.Background(), agent.SearchRequest{
			SessionID: sess.ID(),
			Query:     input,
		})
		if err != nil {
			fmt.Println(styles.RenderError(chatErrorText(err)))
			continue
		}

		normalized := agent.Normalize(resp, asm)
		if hist != nil {
			_ = hist.Record(context.Background(), input, normalized)
		}

		fmt.Println()
		printNormalized(normalized)
		fmt.Println()
	}
}

// handleChatSlash executes a REPL /command. Returns true to exit.
func handleChatSlash(input string, sess *session.Manager) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/quit", "/q", "/exit":
		return true

	case "/new":
		sess.Reset()
		fmt.Println(chatInfoStyle.Render("new session started"))

	case "/status", "/s":
		fmt.Println(chatInfoStyle.Render("session " + sess.ID()))
		fmt.Println(chatInfoStyle.Render("started " + sess.StartTime().Format("15:04:05")))

	case "/help", "/h":
		fmt.Println(chatInfoStyle.Render("/new    start a fresh search session"))
		fmt.Println(chatInfoStyle.Render("/status show session info"))
		fmt.Println(chatInfoStyle.Render("/quit   exit"))

	default:
		fmt.Println(chatInfoStyle.Render("unknown command; /help lists commands"))
	}
	return false
}

// chatErrorText maps client errors to short REPL messages.
func chatErrorText(err error) string {
	switch {
	case errors.Is(err, agent.ErrUnavailable):
		return "search agent is not reachable"
	case errors.Is(err, agent.ErrTimeout):
		return "search timed out"
	case errors.Is(err, agent.ErrRateLimited):
		return "rate limited, wait a moment"
	default:
		return err.Error()
	}
}
