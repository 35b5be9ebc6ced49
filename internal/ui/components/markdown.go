// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DeepakDkd/rag-agent/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDER PIPELINE
// =============================================================================

// Renderer turns a message's raw markdown into terminal output. Prose goes
// through glamour (GitHub-flavored markdown: tables, strikethrough, lists);
// fenced code blocks are pulled out first and rendered as CodeBlocks so they
// keep the language badge and copy affordance.
type Renderer struct {
	width int
	theme *styles.Theme
	term  *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapped to the given width.
func NewRenderer(theme *styles.Theme, width int) *Renderer {
	r := &Renderer{
		width: width,
		theme: theme,
	}
	r.term = newTermRenderer(width)
	return r
}

// newTermRenderer builds the glamour renderer, or nil if construction fails;
// a nil renderer degrades to plain text.
func newTermRenderer(width int) *glamour.TermRenderer {
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return term
}

// SetWidth resizes the renderer.
func (r *Renderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.term = newTermRenderer(width)
}

// Width returns the current wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render produces the element tree for one message's content. When copied is
// true, the last copy-eligible code block shows the "copied" acknowledgment.
func (r *Renderer) Render(content string, copied bool) string {
	segments := SplitFences(content)

	// The acknowledgment belongs to the block the copy key targets, which
	// is the last eligible one.
	lastCopyable := -1
	if copied {
		for i, seg := range segments {
			if seg.IsCode && NewCodeBlock(r.theme, seg.Language, seg.Text).HasCopyAffordance() {
				lastCopyable = i
			}
		}
	}

	var parts []string
	for i, seg := range segments {
		if seg.IsCode {
			cb := NewCodeBlock(r.theme, seg.Language, seg.Text)
			cb.SetMaxWidth(r.width)
			parts = append(parts, cb.Render(copied && i == lastCopyable))
			continue
		}
		if prose := r.renderProse(seg.Text); prose != "" {
			parts = append(parts, prose)
		}
	}

	return strings.Join(parts, "\n")
}

// renderProse renders non-code markdown through glamour, degrading to the
// raw text on any rendering failure.
func (r *Renderer) renderProse(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if r.term == nil {
		return trimmed
	}
	out, err := r.term.Render(trimmed)
	if err != nil {
		return trimmed
	}
	return strings.Trim(out, "\n")
}
