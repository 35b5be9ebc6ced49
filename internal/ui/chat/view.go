// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/DeepakDkd/rag-agent/internal/model"
	"github.com/DeepakDkd/rag-agent/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	if m.store.IsEmpty() && !m.loading {
		sb.WriteString(m.welcome.View())
	} else {
		sb.WriteString(m.viewport.View())
	}
	sb.WriteString("\n")

	if m.loading {
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(m.theme.ThinkingText.Render("Thinking..."))
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderInput())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

// renderHeader renders the title line.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("ragchat")
	endpoint := m.theme.StatusDesc.Render(util.TruncateRunes(m.client.Endpoint(), m.width-12))
	return m.theme.Header.Width(m.width).Render(title + "  " + endpoint)
}

// renderInput renders the input box. The input is visually muted while a
// request is in flight, matching the gated submit.
func (m Model) renderInput() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	if m.loading {
		return m.theme.InputContainer.Width(width).Render(
			m.theme.StatusActive.Render("waiting for the answer..."))
	}
	return m.theme.InputContainer.Width(width).Render(m.input.View())
}

// renderStatusBar renders the key hints and message count.
func (m Model) renderStatusBar() string {
	hint := func(k, desc string) string {
		return m.theme.StatusKey.Render(k) + " " + m.theme.StatusDesc.Render(desc)
	}

	hints := []string{hint("Enter", "send")}
	if !m.store.IsEmpty() {
		hints = append(hints, hint("C-l", "clear"))
		hints = append(hints, hint("C-y", "copy code"))
	}
	hints = append(hints, hint("C-c", "quit"))

	left := strings.Join(hints, m.theme.StatusDesc.Render(" • "))

	right := ""
	if n := m.store.Len(); n > 0 {
		right = m.theme.StatusBar.Render(pluralize(n, "message"))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
}

// renderTranscript renders every message through the render pipeline.
func (m *Model) renderTranscript() string {
	messages := m.store.Messages()
	copied := m.copyAck.Active(m.now())
	lastAssistant := -1
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleAssistant {
			lastAssistant = i
			break
		}
	}

	var parts []string
	for i, msg := range messages {
		// The copy acknowledgment belongs to the message the copy key
		// targets: the newest assistant reply.
		parts = append(parts, m.renderMessage(msg, copied && i == lastAssistant))
	}
	return strings.Join(parts, "\n\n")
}

// renderMessage renders one message: a label line then the content.
func (m *Model) renderMessage(msg model.Message, copied bool) string {
	var label string
	switch msg.Role {
	case model.RoleUser:
		label = m.theme.UserLabel.Render(msg.Role.DisplayName())
	case model.RoleAssistant:
		label = m.theme.AssistantLabel.Render(msg.Role.DisplayName())
	default:
		label = msg.Role.DisplayName()
	}

	header := label
	if m.showTimestamps {
		if ts := formatTimestamp(msg.Timestamp); ts != "" {
			header += " " + m.theme.Timestamp.Render(ts)
		}
	}
	if lbl := msg.Source.Label(); lbl != "" {
		header += " " + m.theme.SourceBadge.Render("("+lbl+")")
	}

	// User turns are echoed as plain text; only assistant answers go through
	// the markdown pipeline.
	if msg.Role == model.RoleUser {
		return header + "\n" + m.theme.UserContent.Width(m.renderer.Width()).Render(msg.Content)
	}
	return header + "\n" + m.renderer.Render(msg.Content, copied)
}

// =============================================================================
// HELPERS
// =============================================================================

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("15:04")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
