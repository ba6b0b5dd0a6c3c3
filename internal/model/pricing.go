// Package model defines the pricing payload as it is understood by the viewer.
//
// Every field that the upstream system may omit is modelled as genuinely
// optional: a nil pointer, a nil slice, or a Text/Flag value that remembers
// whether it was present. Consumers decide on their own fallback.
package model

// Document is one decoded pricing payload.
type Document struct {
	FareQuery      any
	CorporateCodes any
	IsRenew        *bool
	GeneralPolicy  map[int]CheckSet
	PolicyMatch    map[int]MatchInfo
	// PolicyRules is non-nil only when account.configuration.pricing.policies.policy_rule
	// holds a truthy value. An empty array counts.
	PolicyRules    *[]PolicyRule
	TransactionID  Text
	PTCType        Text
	CycleType      Text
	PricingResults []PricingResult
}

// PricingResult is one priced fare option.
type PricingResult struct {
	TotalPrice           *Money
	Penalties            *PenaltySet
	Number               Text
	ValidatingCarrier    Text
	PTCType              Text
	PriceQuoteKey        Text
	PricingCommandNumber Text
	FareComponents       []FareComponent
	RulesSource          []string
}

// Money is an amount and currency pair, both kept as display strings.
type Money struct {
	Amount   Text
	Currency Text
}

// FareComponent is one priced segment group within a pricing option.
type FareComponent struct {
	FareBasis        Text
	FareFamily       Text
	PrivateIndicator Text
	Segments         []Segment
}

// Segment carries the booking class and the carry-on flag of one flight segment.
type Segment struct {
	BookingClass Text
	CarryOn      Flag
}

// PenaltySet holds the change and refund penalties of a pricing option.
// RefundPenalty is nil both when the key is missing and when it is null.
type PenaltySet struct {
	ChangePenalty *Money
	RefundPenalty *Money
	ReferenceList []string
}

// PolicyRule is one configured account pricing rule.
type PolicyRule struct {
	Name Text
	Rule Text
}

// Lookup helpers return ok=false on a miss so callers can tell absent data
// apart from an empty set.

// GeneralPolicyFor returns the check set for the option at index.
func (d *Document) GeneralPolicyFor(index int) (CheckSet, bool) {
	if d == nil {
		return nil, false
	}
	set, ok := d.GeneralPolicy[index]
	return set, ok
}

// PolicyMatchFor returns the match info for the option at index.
func (d *Document) PolicyMatchFor(index int) (MatchInfo, bool) {
	if d == nil {
		return MatchInfo{}, false
	}
	info, ok := d.PolicyMatch[index]
	return info, ok
}

// ShowsFareComponents reports whether the fare component and policy rule
// panels are displayed. The gate is the account policy_rule path, not the
// component data itself.
func (d *Document) ShowsFareComponents() bool {
	return d != nil && d.PolicyRules != nil
}
