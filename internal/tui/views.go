package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/prussyuval/pricings-view/internal/common"
)

const (
	appTitle    = "Pricing Analysis Tool"
	appSubtitle = "Paste your JSON data below to analyze pricing results, policy matches, and fare details."
	inputLabel  = "JSON Input"
)

// renderLoading renders the screen shown before the first resize.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render(appTitle),
		"",
		m.theme.Faint.Render("Loading..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderMain renders header, input, error banner, help and results top to bottom.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
	}

	if banner := m.renderError(); banner != "" {
		sections = append(sections, banner)
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}

	if m.session.HasResults() {
		sections = append(sections, m.results.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(appTitle),
		m.theme.Subtitle.Render(appSubtitle),
		m.theme.Label.Render(inputLabel),
	)
}

func (m Model) renderInput() string {
	style := m.theme.Input
	if m.focus == FocusInput {
		style = m.theme.InputFocused
	}
	return style.Render(m.input.View())
}

// renderError renders the parse error banner, or "" when the last analysis succeeded.
func (m Model) renderError() string {
	if m.session.Err == nil {
		return ""
	}
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return m.theme.ErrorBanner.Width(width).Render(common.UserMessage(m.session.Err))
}

// renderStatus renders the last notice followed by the short key help.
func (m Model) renderStatus() string {
	var parts []string
	if m.notice != "" {
		parts = append(parts, m.theme.StatusInfo.Render(m.notice))
	}
	if m.config.ShowHelp {
		parts = append(parts, m.help.View(m.keymap))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chromeHeight is the height of everything between the input box and the results.
func (m Model) chromeHeight() int {
	h := 0
	if banner := m.renderError(); banner != "" {
		h += lipgloss.Height(banner)
	}
	if status := m.renderStatus(); status != "" {
		h += lipgloss.Height(status)
	}
	return h
}
