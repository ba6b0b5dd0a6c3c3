package policy

// NamedCheck is one of the fixed general policy checks shown for every option.
type NamedCheck struct {
	Field string
	Label string
}

// NamedChecks lists the displayed checks in display order.
var NamedChecks = []NamedCheck{
	{Field: "cabin_class_preserved", Label: "Cabin Class Preserved"},
	{Field: "carry_on_preserved", Label: "Carry-on Preserved"},
	{Field: "fare_family_preserved", Label: "Fare Family Preserved"},
	{Field: "fare_type_match", Label: "Fare Type Match"},
	{Field: "rebook_required", Label: "Rebook Required"},
	{Field: "rule_matched_check", Label: "Rule Matched Check"},
}
