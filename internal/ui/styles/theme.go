// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// Message rendering
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	Timestamp      lipgloss.Style
	SourceBadge    lipgloss.Style
	UserContent    lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusDesc   lipgloss.Style
	StatusActive lipgloss.Style

	// Spinner / loading
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// Code blocks
	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeCopyHint  lipgloss.Style
	CodeCopyAck   lipgloss.Style

	// Welcome screen
	WelcomeBox        lipgloss.Style
	WelcomeTitle      lipgloss.Style
	WelcomeInfo       lipgloss.Style
	SuggestionKey     lipgloss.Style
	SuggestionText    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.Header = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.UserLabel = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.AssistantLabel = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.SourceBadge = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)
	t.UserContent = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.StatusKey = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)
	t.StatusDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.StatusActive = lipgloss.NewStyle().
		Foreground(Emerald)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)
	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.CodeBlock = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(OverlayDim).
		Padding(0, 1).
		Bold(true)
	t.CodeCopyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
	t.CodeCopyAck = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 3)
	t.WelcomeTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)
	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.SuggestionKey = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)
	t.SuggestionText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	return t
}
