// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DeepakDkd/rag-agent/internal/ui/components"
)

// askCmd dispatches one request to the answer endpoint. No timeout is
// imposed here; the client's transport carries its own limit.
func askCmd(client Asker, query string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Ask(context.Background(), query)
		return AnswerMsg{Result: res, Err: err}
	}
}

// copyCmd writes text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{Err: clipboard.WriteAll(text)}
	}
}

// copyAckExpireCmd schedules the revert of the copy acknowledgment.
func copyAckExpireCmd() tea.Cmd {
	return tea.Tick(components.CopyAckDuration, func(time.Time) tea.Msg {
		return CopyAckExpiredMsg{}
	})
}
