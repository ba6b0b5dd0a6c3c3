package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prussyuval/pricings-view/internal/model"
	"github.com/prussyuval/pricings-view/internal/pricing"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
)

// Focus identifies the pane receiving key input.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

const (
	headerHeight   = 3
	minInputHeight = 3
	maxInputHeight = 12
	minResults     = 3
)

// Model holds the main TUI state.
type Model struct {
	theme    themes.Theme
	session  *pricing.Session
	rendered *model.Document
	notice   string
	help     help.Model
	input    textarea.Model
	results  viewport.Model
	config   Config
	keymap   KeyMap
	width    int
	height   int
	focus    Focus
	quitting bool
	ready    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	input := textarea.New()
	input.Placeholder = "Paste pricing JSON here..."
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.CharLimit = 0
	input.MaxHeight = 0
	input.Focus()

	keymap := DefaultKeyMap()
	results := viewport.New(cfg.Width, minResults)
	results.KeyMap = keymap.ScrollKeyMap()

	m := Model{
		theme:   cfg.Theme,
		session: pricing.NewSession(),
		help:    help.New(),
		input:   input,
		results: results,
		config:  cfg,
		keymap:  keymap,
		width:   cfg.Width,
		height:  cfg.Height,
		focus:   FocusInput,
	}

	if cfg.InitialInput != "" {
		m.load(cfg.InitialInput)
	}
	m.keymap.Analyze.SetEnabled(m.session.CanAnalyze())
	m.refresh()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKeys(msg); handled {
			return m, cmd
		}

	case payloadLoadedMsg:
		if msg.err != nil {
			slog.Warn("failed to load payload", "source", msg.source, "error", msg.err)
			m.notice = "Could not read " + msg.source + ": " + msg.err.Error()
			m.layout()
			return m, nil
		}
		m.load(msg.text)
		m.notice = "Loaded " + msg.source
		m.refresh()
		return m, nil

	case watchErrorMsg:
		slog.Warn("file watcher error", "error", msg.err)
		m.notice = "Watch error: " + msg.err.Error()
		m.layout()
		return m, nil
	}

	switch m.focus {
	case FocusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.session.SetInput(m.input.Value())
		m.keymap.Analyze.SetEnabled(m.session.CanAnalyze())
	case FocusResults:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	return m.renderMain()
}

// Session exposes the analysis state.
func (m Model) Session() *pricing.Session {
	return m.session
}

// Focused returns the pane that currently receives key input.
func (m Model) Focused() Focus {
	return m.focus
}

// handleKeys handles keys that work regardless of focus.
func (m *Model) handleKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keymap.Analyze):
		m.session.SetInput(m.input.Value())
		if err := m.session.Analyze(); err != nil {
			slog.Debug("analysis failed", "error", err)
		}
		m.notice = ""
		m.refresh()
		return true, nil

	case key.Matches(msg, m.keymap.Clear):
		m.session.Clear()
		m.input.Reset()
		m.notice = ""
		m.keymap.Analyze.SetEnabled(false)
		m.refresh()
		return true, nil

	case key.Matches(msg, m.keymap.Focus):
		return true, m.toggleFocus()
	}

	return false, nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusInput {
		m.focus = FocusResults
		m.input.Blur()
		return nil
	}
	m.focus = FocusInput
	return m.input.Focus()
}

// load replaces the input text and analyzes it.
func (m *Model) load(text string) {
	m.input.SetValue(text)
	if err := m.session.Load(text); err != nil {
		slog.Debug("analysis failed", "error", err)
	}
	m.keymap.Analyze.SetEnabled(m.session.CanAnalyze())
}

// refresh lays out the panes and re-renders the results for the current
// width. The scroll position resets only when the document changes.
func (m *Model) refresh() {
	m.layout()

	doc := m.session.Document
	if !m.session.HasResults() {
		m.results.SetContent("")
		m.rendered = nil
		return
	}

	formatter := report.NewFormatter(m.theme, m.results.Width)
	m.results.SetContent(formatter.Format(report.Build(doc)))
	if doc != m.rendered {
		m.results.GotoTop()
		m.rendered = doc
	}
}

// layout sizes the input box and the results viewport to the terminal.
func (m *Model) layout() {
	inputHeight := m.height / 3
	if inputHeight < minInputHeight {
		inputHeight = minInputHeight
	}
	if inputHeight > maxInputHeight {
		inputHeight = maxInputHeight
	}

	inputWidth := m.width - 2
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.SetWidth(inputWidth)
	m.input.SetHeight(inputHeight)
	m.help.Width = m.width

	used := headerHeight + inputHeight + 2 + m.chromeHeight()
	resultsHeight := m.height - used
	if resultsHeight < minResults {
		resultsHeight = minResults
	}

	m.results.Width = m.width
	m.results.Height = resultsHeight
}
