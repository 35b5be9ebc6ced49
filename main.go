// ragchat - a terminal client for a retrieval-augmented answer service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/DeepakDkd/rag-agent/internal/answer"
	"github.com/DeepakDkd/rag-agent/internal/config"
	"github.com/DeepakDkd/rag-agent/internal/model"
	"github.com/DeepakDkd/rag-agent/internal/session"
	"github.com/DeepakDkd/rag-agent/internal/ui/chat"
	"github.com/DeepakDkd/rag-agent/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	query := flag.String("q", "", "ask a single question and print the answer")
	clearHistory := flag.Bool("clear-history", false, "delete the saved chat history and exit")
	initConfig := flag.Bool("init-config", false, "write the effective configuration to the config file and exit")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ragchat %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *initConfig {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if path, err := config.Path(); err == nil {
			fmt.Printf("Wrote %s\n", path)
		}
		return
	}

	store := session.NewStore(session.NewFileStorage(cfg.HistoryDir))

	if *clearHistory {
		store.Clear()
		fmt.Println("Chat history cleared.")
		return
	}

	client := answer.NewClient(cfg.EndpointURL).
		WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	if *query != "" {
		runAsk(client, store, *query)
		return
	}

	runTUI(cfg, store, client)
}

// runTUI starts the interactive chat interface.
func runTUI(cfg *config.Config, store *session.Store, client *answer.Client) {
	theme := styles.NewTheme()

	m := chat.New(store, client, theme)
	m.SetVersion(Version)
	m.SetShowTimestamps(cfg.UI.ShowTimestamps)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running ragchat: %v\n", err)
		os.Exit(1)
	}
}

// runAsk sends a single question and prints the settled answer to stdout.
// The exchange is recorded in the history like any interactive turn.
func runAsk(client *answer.Client, store *session.Store, query string) {
	store.Append(model.NewUserMessage(query))

	res, err := client.Ask(context.Background(), query)
	msg := answer.Settle(res, err)
	store.Append(msg)

	displayAnswer(msg)
}

// displayAnswer prints an answer, rendering markdown only on a TTY so that
// piped output stays clean.
func displayAnswer(msg model.Message) {
	out := msg.Content
	if isStdoutTTY() {
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		); err == nil {
			if rendered, rerr := r.Render(msg.Content); rerr == nil {
				out = rendered
			}
		}
	}
	fmt.Print(out)
	if lbl := msg.Source.Label(); lbl != "" {
		fmt.Printf("\n(%s)\n", lbl)
	}
}

func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
