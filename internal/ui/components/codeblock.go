// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/DeepakDkd/rag-agent/internal/ui/styles"
	"github.com/DeepakDkd/rag-agent/internal/util"
)

const (
	// CopyThreshold is the minimum trimmed length, in runes, for a code
	// block to grow a copy affordance. Trivial one-liners stay clean.
	CopyThreshold = 50

	// CopyAckDuration is how long the "copied" acknowledgment shows before
	// reverting to the plain hint.
	CopyAckDuration = 2 * time.Second
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock represents a fenced code block ready for rendering.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int

	theme *styles.Theme
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(theme *styles.Theme, language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
		theme:    theme,
	}
}

// SetMaxWidth sets the maximum width for the code block.
func (c *CodeBlock) SetMaxWidth(width int) {
	c.MaxWidth = width
}

// HasCopyAffordance reports whether this block is long enough to carry the
// copy-to-clipboard control.
func (c CodeBlock) HasCopyAffordance() bool {
	return util.RuneLen(strings.TrimSpace(c.Code)) > CopyThreshold
}

// CopyText returns the text the copy control places on the clipboard.
func (c CodeBlock) CopyText() string {
	return strings.TrimSpace(c.Code)
}

// Render renders the block with syntax highlighting, a language badge, and,
// for blocks past the threshold, a copy hint footer. When copied is true the
// footer shows the transient acknowledgment instead.
func (c CodeBlock) Render(copied bool) string {
	code := strings.TrimSpace(c.Code)

	language := c.Language
	if language == "" {
		language = detectLanguage(code)
	}

	content := highlightCode(code, language)

	var header string
	if c.Language != "" {
		header = c.theme.CodeLangBadge.Render(c.Language) + "\n"
	}

	var footer string
	if c.HasCopyAffordance() {
		if copied {
			footer = "\n" + c.theme.CodeCopyAck.Render("copied")
		} else {
			footer = "\n" + c.theme.CodeCopyHint.Render("ctrl+y to copy")
		}
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return c.theme.CodeBlock.MaxWidth(maxWidth).Render(header + content + footer)
}

// =============================================================================
// FENCE PARSER
// =============================================================================

// Segment is one stretch of message content: either prose markdown or a
// fenced code block.
type Segment struct {
	IsCode   bool
	Language string
	Text     string
}

// SplitFences splits markdown text into prose and fenced-code segments.
// An unclosed trailing fence still yields a code segment.
func SplitFences(text string) []Segment {
	lines := strings.Split(text, "\n")

	var segments []Segment
	var buf []string
	var inCode bool
	var language string

	flush := func(isCode bool, lang string) {
		if len(buf) == 0 {
			return
		}
		segments = append(segments, Segment{
			IsCode:   isCode,
			Language: lang,
			Text:     strings.Join(buf, "\n"),
		})
		buf = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCode {
				flush(true, language)
				language = ""
				inCode = false
			} else {
				flush(false, "")
				language = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				inCode = true
			}
			continue
		}
		buf = append(buf, line)
	}
	flush(inCode, language)

	return segments
}

// LastCopyableBlock returns the last fenced block in text that carries a copy
// affordance, if any.
func LastCopyableBlock(theme *styles.Theme, text string) (CodeBlock, bool) {
	var found CodeBlock
	var ok bool
	for _, seg := range SplitFences(text) {
		if !seg.IsCode {
			continue
		}
		cb := NewCodeBlock(theme, seg.Language, seg.Text)
		if cb.HasCopyAffordance() {
			found = cb
			ok = true
		}
	}
	return found, ok
}

// =============================================================================
// COPY ACKNOWLEDGMENT
// =============================================================================

// CopyAck tracks the transient "copied" acknowledgment. It is plain UI state
// with an injected clock; it never touches the session or request model.
type CopyAck struct {
	until time.Time
}

// Trigger starts the acknowledgment window at now.
func (a *CopyAck) Trigger(now time.Time) {
	a.until = now.Add(CopyAckDuration)
}

// Active reports whether the acknowledgment is still showing at now.
func (a *CopyAck) Active(now time.Time) bool {
	return now.Before(a.until)
}

// Remaining returns how long the acknowledgment has left at now.
func (a *CopyAck) Remaining(now time.Time) time.Duration {
	if !a.Active(now) {
		return 0
	}
	return a.until.Sub(now)
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightCode applies syntax highlighting using the chroma library,
// falling back to the raw code if anything goes wrong.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// detectLanguage attempts to detect the programming language of the code.
func detectLanguage(code string) string {
	lexer := lexers.Analyse(code)
	if lexer != nil {
		return lexer.Config().Name
	}
	return ""
}

// padToWidth pads s with spaces to the given display width, accounting for
// double-width characters.
func padToWidth(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
