package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 100

// twoColumnMin is the inner card width from which panels sit side by side.
const twoColumnMin = 76

// Formatter renders a Report for the terminal.
type Formatter struct {
	styles *Styles
	width  int
}

// NewFormatter creates a formatter for the given theme and total width.
// A non-positive width selects DefaultWidth.
func NewFormatter(theme themes.Theme, width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Formatter{
		styles: NewStyles(theme),
		width:  width,
	}
}

// Width returns the total width the formatter lays out for.
func (f *Formatter) Width() int {
	return f.width
}

// Format renders the whole report.
func (f *Formatter) Format(r Report) string {
	sections := []string{
		f.formatHeader(r),
		f.formatSummary(r),
	}

	for _, option := range r.Options {
		sections = append(sections, f.FormatOption(option))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// FormatOption renders one pricing option card.
func (f *Formatter) FormatOption(o OptionView) string {
	inner := f.innerWidth()

	parts := []string{
		f.formatOptionHeader(o, inner),
		f.columns(inner, f.formatGeneralPolicy(o), f.formatPolicyMatch(o)),
		f.styles.Heading.Render("$ Fare Details"),
		f.columns(inner, f.formatFareDetails(o), f.formatPenalties(o)),
	}

	if o.ShowComponents {
		parts = append(parts, f.formatComponents(o), f.formatRules(o))
	}

	return f.styles.Card.
		Width(f.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *Formatter) formatHeader(r Report) string {
	title := f.styles.Title.Render("Analysis Results")
	id := f.styles.Subtitle.Render("Transaction ID: " + r.TransactionID)
	return lipgloss.JoinVertical(lipgloss.Left, title, id, "")
}

func (f *Formatter) formatSummary(r Report) string {
	items := []string{
		f.kv("Total Pricing Options", fmt.Sprintf("%d", r.OptionCount)),
		f.kv("Passenger Type", r.PTCType),
		f.kv("Cycle Type", r.CycleType),
	}
	return f.styles.Summary.
		Width(f.width - 2).
		Render(strings.Join(items, "    "))
}

func (f *Formatter) formatOptionHeader(o OptionView, inner int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		f.styles.Heading.Render(fmt.Sprintf("%s Pricing Option #%s", IconPlane, o.Number)),
		f.styles.Faint.Render("Quote Key: "+o.QuoteKey),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		f.styles.Price.Render(o.TotalPrice),
		f.styles.Faint.Render("Total Price"),
	)

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	var header string
	if gap < 1 {
		header = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		header = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}

	rule := f.styles.Faint.Render(strings.Repeat("─", inner))
	return lipgloss.JoinVertical(lipgloss.Left, header, rule)
}

func (f *Formatter) formatGeneralPolicy(o OptionView) string {
	lines := []string{f.panelTitle("General Policy Validation", f.styles.GeneralIcon(o.GeneralStatus))}

	if !o.HasGeneralPolicy {
		lines = append(lines, f.styles.Faint.Render(NoGeneralPolicy))
		return strings.Join(lines, "\n")
	}

	for _, check := range o.Checks {
		style, icon := f.styles.ForCheck(check.State)
		line := style.Render(fmt.Sprintf("%s %s: %s", icon, check.Label, check.State))
		lines = append(lines, line+" "+f.styles.Faint.Render("("+check.Field+")"))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) formatPolicyMatch(o OptionView) string {
	lines := []string{f.panelTitle("Policy Match Status", f.styles.MatchIcon(o.MatchStatus))}

	if !o.HasPolicyMatch {
		lines = append(lines, f.styles.Faint.Render(NoPolicyMatch))
		return strings.Join(lines, "\n")
	}

	for _, match := range []MatchLine{o.Change, o.Refund} {
		style, icon := f.styles.ForMatch(match.Matched)
		line := style.Render(fmt.Sprintf("%s %s: %s", icon, match.Label, match.Text()))
		lines = append(lines, line+" "+f.styles.Faint.Render("("+match.Field+")"))
		if match.Message != "" {
			lines = append(lines, "  "+f.styles.Subtitle.Render(match.Message))
		}
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) formatFareDetails(o OptionView) string {
	return strings.Join([]string{
		f.kv("Validating Carrier", o.ValidatingCarrier),
		f.kv("Passenger Type", o.PassengerType),
		f.kv("Pricing Command", o.PricingCommand),
		f.kv("Rules Source", o.RulesSource),
	}, "\n")
}

func (f *Formatter) formatPenalties(o OptionView) string {
	return strings.Join([]string{
		f.styles.Heading.Render("Penalties"),
		f.penalty("Change Penalty", o.ChangePenalty),
		f.penalty("Refund Penalty", o.RefundPenalty),
		f.penalty("Reference List", o.ReferenceList),
	}, "\n")
}

func (f *Formatter) formatComponents(o OptionView) string {
	blocks := []string{f.styles.Heading.Render("Fare Components")}

	for _, c := range o.Components {
		lines := []string{
			f.kv("Fare Basis", c.FareBasis),
			f.kv("Fare Family", c.FareFamily),
			f.kv("Private Indicator", c.PrivateIndicator),
			f.styles.Label.Render("Segments:"),
		}
		for _, s := range c.Segments {
			line := "  " + f.styles.Value.Render("Class: "+s.BookingClass)
			if s.CarryOn != "" {
				line += " " + f.styles.Faint.Render("(Carry-on: "+s.CarryOn+")")
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, f.styles.SubCard.Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (f *Formatter) formatRules(o OptionView) string {
	lines := []string{"", f.styles.Heading.Render("Policy Rules")}
	for _, rule := range o.Rules {
		lines = append(lines, "  "+f.styles.Value.Render(rule.Name+":")+" "+f.styles.Subtitle.Render(rule.Rule))
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) panelTitle(title, icon string) string {
	heading := f.styles.Heading.Render(title)
	if icon == "" {
		return heading
	}
	return heading + " " + icon
}

func (f *Formatter) kv(label, value string) string {
	return f.styles.Label.Render(label+":") + " " + f.styles.Value.Render(value)
}

func (f *Formatter) penalty(label, value string) string {
	if value == None {
		return f.styles.Label.Render(label+":") + " " + f.styles.Faint.Render(value)
	}
	return f.kv(label, value)
}

// columns lays two panels side by side when there is room, stacked otherwise.
func (f *Formatter) columns(inner int, left, right string) string {
	if inner < twoColumnMin {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right, "")
	}
	half := inner / 2
	col := lipgloss.NewStyle().Width(half).PaddingBottom(1)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(left),
		col.Width(inner-half).Render(right),
	)
}

// innerWidth is the content width inside a card: border 2, padding 4.
func (f *Formatter) innerWidth() int {
	inner := f.width - 6
	if inner < 20 {
		return 20
	}
	return inner
}
