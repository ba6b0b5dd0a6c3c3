package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/prussyuval/pricings-view/internal/policy"
)

// MarkdownFormatter renders a Report as Markdown, e.g. for pasting into a ticket.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the whole report.
func (m *MarkdownFormatter) Format(r Report) string {
	var b strings.Builder

	b.WriteString("# Analysis Results\n\n")
	fmt.Fprintf(&b, "Transaction ID: %s\n\n", code(r.TransactionID))
	b.WriteString("| Total Pricing Options | Passenger Type | Cycle Type |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %s | %s |\n", r.OptionCount, cell(r.PTCType), cell(r.CycleType))

	for _, option := range r.Options {
		b.WriteString("\n")
		m.writeOption(&b, option)
	}

	return b.String()
}

func (m *MarkdownFormatter) writeOption(b *strings.Builder, o OptionView) {
	fmt.Fprintf(b, "## Pricing Option #%s\n\n", escape(o.Number))
	fmt.Fprintf(b, "Quote Key: %s  \nTotal Price: **%s**\n\n", code(o.QuoteKey), escape(o.TotalPrice))

	fmt.Fprintf(b, "### General Policy Validation (%s)\n\n", o.GeneralStatus)
	if o.HasGeneralPolicy {
		for _, check := range o.Checks {
			fmt.Fprintf(b, "- %s %s: %s (`%s`)\n", markdownCheckIcon(check.State), check.Label, check.State, check.Field)
		}
	} else {
		fmt.Fprintf(b, "_%s_\n", NoGeneralPolicy)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "### Policy Match Status (%s)\n\n", o.MatchStatus)
	if o.HasPolicyMatch {
		for _, match := range []MatchLine{o.Change, o.Refund} {
			fmt.Fprintf(b, "- %s %s: %s (`%s`)\n", matchIcon(match.Matched), match.Label, match.Text(), match.Field)
			if match.Message != "" {
				fmt.Fprintf(b, "  - %s\n", escape(match.Message))
			}
		}
	} else {
		fmt.Fprintf(b, "_%s_\n", NoPolicyMatch)
	}
	b.WriteString("\n")

	b.WriteString("### Fare Details\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Validating Carrier", o.ValidatingCarrier},
		{"Passenger Type", o.PassengerType},
		{"Pricing Command", o.PricingCommand},
		{"Rules Source", o.RulesSource},
		{"Change Penalty", o.ChangePenalty},
		{"Refund Penalty", o.RefundPenalty},
		{"Reference List", o.ReferenceList},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", row[0], cell(row[1]))
	}

	if !o.ShowComponents {
		return
	}

	b.WriteString("\n### Fare Components\n\n")
	for i, c := range o.Components {
		fmt.Fprintf(b, "%d. Fare Basis %s, Fare Family %s, Private Indicator %s\n",
			i+1, code(c.FareBasis), code(c.FareFamily), code(c.PrivateIndicator))
		for _, s := range c.Segments {
			line := "Class: " + escape(s.BookingClass)
			if s.CarryOn != "" {
				line += " (Carry-on: " + s.CarryOn + ")"
			}
			fmt.Fprintf(b, "   - %s\n", line)
		}
	}

	b.WriteString("\n### Policy Rules\n\n")
	for _, rule := range o.Rules {
		fmt.Fprintf(b, "- **%s:** %s\n", escape(rule.Name), escape(rule.Rule))
	}
}

// RenderMarkdown renders Markdown for the terminal with glamour. With color
// disabled the plain "notty" style is used.
func RenderMarkdown(markdown string, width int, color bool) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStylePath("notty")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func markdownCheckIcon(state policy.CheckDisplay) string {
	switch state {
	case policy.CheckPassed:
		return IconPassed
	case policy.CheckFailed:
		return IconFailed
	case policy.CheckUnknown:
		return IconPartial
	default:
		return IconNotChecked
	}
}

func matchIcon(matched bool) string {
	if matched {
		return IconPassed
	}
	return IconFailed
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"|", `\|`,
)

// escape backslash-escapes payload text so it renders literally.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// code wraps s in a code span. The fence is one backtick longer than the
// longest run inside s.
func code(s string) string {
	if s == "" {
		return ""
	}
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if len(fence) > 1 {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

// cell escapes a table value, pipes included, so it cannot break the row.
func cell(s string) string {
	return escape(s)
}
