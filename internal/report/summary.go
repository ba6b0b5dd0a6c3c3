package report

import "github.com/prussyuval/pricings-view/internal/policy"

// Summary is the machine-readable status overview of a report.
type Summary struct {
	TransactionID string          `json:"transaction_id" yaml:"transaction_id"`
	Options       []OptionSummary `json:"options" yaml:"options"`
}

// OptionSummary carries the two policy statuses of one pricing option.
type OptionSummary struct {
	Number        string               `json:"number" yaml:"number"`
	QuoteKey      string               `json:"quote_key" yaml:"quote_key"`
	TotalPrice    string               `json:"total_price" yaml:"total_price"`
	GeneralPolicy policy.GeneralStatus `json:"general_policy" yaml:"general_policy"`
	PolicyMatch   policy.MatchStatus   `json:"policy_match" yaml:"policy_match"`
}

// Summarize reduces r to its per-option statuses.
func Summarize(r Report) Summary {
	s := Summary{
		TransactionID: r.TransactionID,
		Options:       make([]OptionSummary, 0, len(r.Options)),
	}

	for _, o := range r.Options {
		s.Options = append(s.Options, OptionSummary{
			Number:        o.Number,
			QuoteKey:      o.QuoteKey,
			TotalPrice:    o.TotalPrice,
			GeneralPolicy: o.GeneralStatus,
			PolicyMatch:   o.MatchStatus,
		})
	}

	return s
}
