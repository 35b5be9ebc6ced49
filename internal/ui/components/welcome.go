// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DeepakDkd/rag-agent/internal/ui/styles"
	"github.com/DeepakDkd/rag-agent/internal/util"
)

// Suggestions are the canned queries offered on an empty session. Pressing
// the matching number key submits the text immediately.
var Suggestions = [4]string{
	"What topics do the indexed documents cover?",
	"Summarize the key points of the documents",
	"What are the most important dates mentioned?",
	"Find recent web results related to the documents",
}

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// Welcome is the empty-session screen: a short intro plus the suggestion
// shortcuts. It disappears as soon as the first message lands.
type Welcome struct {
	version  string
	endpoint string
	width    int
	height   int
	theme    *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetEndpoint sets the displayed endpoint URL.
func (w *Welcome) SetEndpoint(endpoint string) {
	w.endpoint = endpoint
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the welcome screen.
func (w Welcome) View() string {
	var sb strings.Builder

	sb.WriteString(w.theme.WelcomeTitle.Render("ragchat " + w.version))
	sb.WriteString("\n")
	sb.WriteString(w.theme.WelcomeInfo.Render("Ask anything; answers come from your documents and the web."))
	if w.endpoint != "" {
		sb.WriteString("\n")
		sb.WriteString(w.theme.WelcomeInfo.Render("endpoint: " + util.TruncateRunes(w.endpoint, 60)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(w.theme.WelcomeInfo.Render("Try one of these:"))
	sb.WriteString("\n")

	keyWidth := 4
	for i, suggestion := range Suggestions {
		key := padToWidth("["+string(rune('1'+i))+"]", keyWidth)
		sb.WriteString("\n")
		sb.WriteString(w.theme.SuggestionKey.Render(key))
		sb.WriteString(" ")
		sb.WriteString(w.theme.SuggestionText.Render(suggestion))
	}

	box := w.theme.WelcomeBox.Render(sb.String())
	if w.width <= 0 || w.height <= 0 {
		return box
	}
	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, box)
}
