package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/prussyuval/pricings-view/internal/policy"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
)

// Status icons.
const (
	IconPassed     = "✓"
	IconFailed     = "✗"
	IconPartial    = "!"
	IconNotChecked = "○"
	IconPlane      = "✈"
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Faint    lipgloss.Style
	Price    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Pending  lipgloss.Style
	Card     lipgloss.Style
	Summary  lipgloss.Style
	SubCard  lipgloss.Style
}

// NewStyles creates report styles from a theme.
func NewStyles(theme themes.Theme) *Styles {
	return &Styles{
		Title:    theme.Title.MarginBottom(1),
		Subtitle: theme.Subtitle,
		Heading:  theme.Bold,
		Label:    theme.Label,
		Value:    theme.Bold,
		Faint:    theme.Faint,
		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Success: theme.StatusSuccess,
		Warning: theme.StatusWarning,
		Error:   theme.StatusError,
		Pending: theme.StatusPending,
		Card:    theme.Card,
		Summary: theme.Summary,
		SubCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(theme.Border).
			PaddingLeft(1).
			MarginTop(1),
	}
}

// ForCheck returns the style and icon of a single check state.
func (s *Styles) ForCheck(state policy.CheckDisplay) (lipgloss.Style, string) {
	switch state {
	case policy.CheckPassed:
		return s.Success, IconPassed
	case policy.CheckFailed:
		return s.Error, IconFailed
	case policy.CheckUnknown:
		return s.Warning, IconPartial
	default:
		return s.Pending, IconNotChecked
	}
}

// GeneralIcon renders the header icon of the general policy panel. Unknown has no icon.
func (s *Styles) GeneralIcon(status policy.GeneralStatus) string {
	switch status {
	case policy.GeneralPassed:
		return s.Success.Render(IconPassed)
	case policy.GeneralFailed:
		return s.Error.Render(IconFailed)
	case policy.GeneralPartial:
		return s.Warning.Render(IconPartial)
	case policy.GeneralNotChecked:
		return s.Pending.Render(IconNotChecked)
	default:
		return ""
	}
}

// MatchIcon renders the header icon of the policy match panel. Unknown has no icon.
func (s *Styles) MatchIcon(status policy.MatchStatus) string {
	switch status {
	case policy.Matched:
		return s.Success.Render(IconPassed)
	case policy.NotMatched:
		return s.Error.Render(IconFailed)
	default:
		return ""
	}
}

// ForMatch returns the style and icon of a change or refund match line.
func (s *Styles) ForMatch(matched bool) (lipgloss.Style, string) {
	if matched {
		return s.Success, IconPassed
	}
	return s.Error, IconFailed
}
