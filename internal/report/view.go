// Package report projects a pricing document into display-ready views and
// formats them for the terminal or as Markdown.
package report

import (
	"strings"

	"github.com/prussyuval/pricings-view/internal/model"
	"github.com/prussyuval/pricings-view/internal/policy"
)

// Fallback texts for absent data.
const (
	NoGeneralPolicy = "No general policy data available"
	NoPolicyMatch   = "No policy match data available"
	None            = "None"
	NotAvailable    = "N/A"
)

// Report is the display projection of one document.
type Report struct {
	TransactionID string
	PTCType       string
	CycleType     string
	Options       []OptionView
	OptionCount   int
}

// OptionView is everything shown for one pricing option.
type OptionView struct {
	Number        string
	QuoteKey      string
	TotalPrice    string
	GeneralStatus policy.GeneralStatus
	MatchStatus   policy.MatchStatus

	// Checks is nil when the option has no general policy data.
	Checks []CheckLine
	// Change and Refund are meaningful only when HasPolicyMatch is set.
	Change MatchLine
	Refund MatchLine

	ValidatingCarrier string
	PassengerType     string
	PricingCommand    string
	RulesSource       string
	ChangePenalty     string
	RefundPenalty     string
	ReferenceList     string

	Components []ComponentView
	Rules      []RuleView

	Index            int
	HasGeneralPolicy bool
	HasPolicyMatch   bool
	ShowComponents   bool
}

// CheckLine is one named general policy check.
type CheckLine struct {
	Field string
	Label string
	State policy.CheckDisplay
}

// MatchLine is the change or refund policy match line.
type MatchLine struct {
	Field   string
	Label   string
	Message string
	Matched bool
}

// Text returns "Matched" or "Not Matched".
func (l MatchLine) Text() string {
	if l.Matched {
		return "Matched"
	}
	return "Not Matched"
}

// ComponentView is one fare component.
type ComponentView struct {
	FareBasis        string
	FareFamily       string
	PrivateIndicator string
	Segments         []SegmentView
}

// SegmentView is one segment line. CarryOn is "Yes", "No", or "" when the
// payload carried an explicit null.
type SegmentView struct {
	BookingClass string
	CarryOn      string
}

// RuleView is one account policy rule.
type RuleView struct {
	Name string
	Rule string
}

// Build projects doc into a Report. A nil document yields an empty report.
func Build(doc *model.Document) Report {
	if doc == nil {
		return Report{}
	}

	r := Report{
		TransactionID: doc.TransactionID.Value(),
		PTCType:       doc.PTCType.Value(),
		CycleType:     doc.CycleType.Value(),
		OptionCount:   len(doc.PricingResults),
		Options:       make([]OptionView, 0, len(doc.PricingResults)),
	}

	for i, result := range doc.PricingResults {
		r.Options = append(r.Options, BuildOption(doc, i, result))
	}

	return r
}

// BuildOption projects the pricing result at index. Policy data is looked up
// by index; a miss renders as "no data available".
func BuildOption(doc *model.Document, index int, result model.PricingResult) OptionView {
	checks, hasChecks := doc.GeneralPolicyFor(index)
	match, hasMatch := doc.PolicyMatchFor(index)

	v := OptionView{
		Index:             index,
		Number:            result.Number.Value(),
		QuoteKey:          result.PriceQuoteKey.Value(),
		TotalPrice:        formatTotal(result.TotalPrice),
		GeneralStatus:     policy.General(checks, hasChecks),
		MatchStatus:       policy.Match(match, hasMatch),
		HasGeneralPolicy:  hasChecks,
		HasPolicyMatch:    hasMatch,
		ValidatingCarrier: result.ValidatingCarrier.Value(),
		PassengerType:     result.PTCType.Value(),
		PricingCommand:    result.PricingCommandNumber.Value(),
		RulesSource:       joinOr(result.RulesSource, NotAvailable),
		ChangePenalty:     None,
		RefundPenalty:     None,
		ReferenceList:     None,
		ShowComponents:    doc.ShowsFareComponents(),
	}

	if p := result.Penalties; p != nil {
		v.ChangePenalty = formatPenalty(p.ChangePenalty)
		v.RefundPenalty = formatPenalty(p.RefundPenalty)
		v.ReferenceList = joinOr(p.ReferenceList, None)
	}

	if hasChecks {
		v.Checks = make([]CheckLine, 0, len(policy.NamedChecks))
		for _, named := range policy.NamedChecks {
			v.Checks = append(v.Checks, CheckLine{
				Field: named.Field,
				Label: named.Label,
				State: policy.Display(checks[named.Field]),
			})
		}
	}

	if hasMatch {
		v.Change = MatchLine{
			Field:   "change_match",
			Label:   "Change Policy",
			Matched: match.ChangeMatch.IsMatched,
			Message: match.ChangeMatch.Message,
		}
		v.Refund = MatchLine{
			Field:   "refund_match",
			Label:   "Refund Policy",
			Matched: match.RefundMatch.IsMatched,
			Message: match.RefundMatch.Message,
		}
	}

	if v.ShowComponents {
		v.Components = buildComponents(result.FareComponents)
		for _, rule := range *doc.PolicyRules {
			v.Rules = append(v.Rules, RuleView{
				Name: rule.Name.Value(),
				Rule: rule.Rule.Value(),
			})
		}
	}

	return v
}

func buildComponents(components []model.FareComponent) []ComponentView {
	views := make([]ComponentView, 0, len(components))
	for _, c := range components {
		cv := ComponentView{
			FareBasis:        c.FareBasis.Value(),
			FareFamily:       c.FareFamily.Value(),
			PrivateIndicator: c.PrivateIndicator.Value(),
		}
		for _, s := range c.Segments {
			cv.Segments = append(cv.Segments, SegmentView{
				BookingClass: s.BookingClass.Value(),
				CarryOn:      carryOn(s.CarryOn),
			})
		}
		views = append(views, cv)
	}
	return views
}

// carryOn hides only an explicit null; a missing flag reads as "No".
func carryOn(flag model.Flag) string {
	switch {
	case flag.IsNull():
		return ""
	case flag.Truthy:
		return "Yes"
	default:
		return "No"
	}
}

func formatTotal(m *model.Money) string {
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m.Amount.Value() + " " + m.Currency.Value())
}

func formatPenalty(m *model.Money) string {
	if m == nil {
		return None
	}
	return strings.TrimSpace(m.Amount.Value() + " " + m.Currency.Value())
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
