// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DeepakDkd/rag-agent/internal/answer"
	"github.com/DeepakDkd/rag-agent/internal/model"
	"github.com/DeepakDkd/rag-agent/internal/session"
	"github.com/DeepakDkd/rag-agent/internal/ui/components"
	"github.com/DeepakDkd/rag-agent/internal/ui/styles"
)

// Asker is the answer endpoint as the chat model sees it.
type Asker interface {
	Ask(ctx context.Context, query string) (*answer.Result, error)
	Endpoint() string
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	width  int
	height int

	// Session and transport
	store  *session.Store
	client Asker

	// Single-flight request state: true between submit and settle.
	loading bool

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	welcome  components.Welcome
	renderer *components.Renderer
	theme    *styles.Theme
	keys     KeyMap

	// Copy acknowledgment state
	copyAck components.CopyAck
	now     func() time.Time

	showTimestamps bool
}

// New creates a new chat model over the given store and client.
func New(store *session.Store, client Asker, theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question..."
	ti.CharLimit = 4096
	ti.PromptStyle = theme.InputPrompt
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.Spinner

	welcome := components.NewWelcome(theme)
	welcome.SetEndpoint(client.Endpoint())

	m := Model{
		width:    80,
		height:   24,
		store:    store,
		client:   client,
		viewport: vp,
		input:    ti,
		spinner:  sp,
		welcome:  welcome,
		renderer: components.NewRenderer(theme, 78),
		theme:    theme,
		keys:     DefaultKeyMap(),
		now:      time.Now,

		showTimestamps: true,
	}
	m.refreshViewport()
	return m
}

// SetVersion sets the version shown on the welcome screen.
func (m *Model) SetVersion(version string) {
	m.welcome.SetVersion(version)
}

// SetShowTimestamps toggles per-message timestamps in the transcript.
func (m *Model) SetShowTimestamps(show bool) {
	m.showTimestamps = show
	m.refreshViewport()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Loading reports whether a request is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnswerMsg:
		// The settle path: success or failure, exactly one assistant
		// message lands and the lifecycle returns to idle.
		m.store.Append(answer.Settle(msg.Result, msg.Err))
		m.loading = false
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case CopyResultMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.copyAck.Trigger(m.now())
		m.refreshViewport()
		return m, copyAckExpireCmd()

	case CopyAckExpiredMsg:
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keys.Clear):
		// The clear control only exists while there is history.
		if !m.store.IsEmpty() && !m.loading {
			m.store.Clear()
			m.refreshViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyLastCodeBlock()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Suggestion shortcuts, shown only on an empty session: the number keys
	// submit canned text immediately (unless the user is mid-sentence).
	if m.store.IsEmpty() && m.input.Value() == "" {
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
			return m.submit(components.Suggestions[s[0]-'1'])
		}
	}

	// The input is disabled while a request is in flight.
	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts the request lifecycle for text. It is a no-op for
// empty/whitespace-only input and while a request is already in flight.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || m.loading {
		return m, nil
	}

	// Optimistic local echo before the request goes out.
	m.store.Append(model.NewUserMessage(trimmed))
	m.input.Reset()
	m.loading = true
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, askCmd(m.client, trimmed))
}

// copyLastCodeBlock copies the newest copy-eligible code block in the last
// assistant message, if any.
func (m Model) copyLastCodeBlock() (tea.Model, tea.Cmd) {
	last, ok := m.lastAssistantMessage()
	if !ok {
		return m, nil
	}
	cb, ok := components.LastCopyableBlock(m.theme, last.Content)
	if !ok {
		return m, nil
	}
	return m, copyCmd(cb.CopyText())
}

// lastAssistantMessage returns the most recent assistant message.
func (m Model) lastAssistantMessage() (model.Message, bool) {
	messages := m.store.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleAssistant {
			return messages[i], true
		}
	}
	return model.Message{}, false
}

// resize lays the chat out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth := width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	m.renderer.SetWidth(contentWidth)
	m.input.Width = contentWidth - 4

	// Header, loading line, input box, status bar.
	viewportHeight := height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight
	m.welcome.SetSize(width, viewportHeight)

	m.refreshViewport()
	m.viewport.GotoBottom()
}
