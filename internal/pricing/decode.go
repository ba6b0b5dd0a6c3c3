package pricing

import (
	"encoding/json"
	"strconv"

	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/model"
)

// decodeDocument maps a generic JSON value onto the document model. It never
// fails: wrong-typed or missing fields simply come out absent.
func decodeDocument(root any) *model.Document {
	doc := &model.Document{
		GeneralPolicy: make(map[int]model.CheckSet),
		PolicyMatch:   make(map[int]model.MatchInfo),
	}

	fields, ok := object(root)
	if !ok {
		return doc
	}

	doc.TransactionID = text(fields["transaction_id"])
	doc.PTCType = text(fields["ptc_type"])
	doc.CycleType = text(fields["cycle_type"])
	doc.FareQuery = fields["fare_query"]
	doc.CorporateCodes = fields["corporate_codes"]
	if renew, ok := fields["is_renew"].(bool); ok {
		doc.IsRenew = &renew
	}

	if results, ok := array(fields["pricing_results"]); ok {
		doc.PricingResults = make([]model.PricingResult, 0, len(results))
		for _, raw := range results {
			doc.PricingResults = append(doc.PricingResults, decodePricingResult(raw))
		}
	}

	if offers, ok := object(fields["general_policy_offers_info"]); ok {
		for key, raw := range offers {
			index, ok := optionIndex(key)
			if !ok {
				common.LogDebug("Ignoring general policy entry with non-index key", common.Fields{"key": key})
				continue
			}
			if !truthy(raw) {
				continue
			}
			doc.GeneralPolicy[index] = decodeCheckSet(raw)
		}
	}

	if offers, ok := object(fields["policy_match_offers_info"]); ok {
		for key, raw := range offers {
			index, ok := optionIndex(key)
			if !ok {
				common.LogDebug("Ignoring policy match entry with non-index key", common.Fields{"key": key})
				continue
			}
			if !truthy(raw) {
				continue
			}
			doc.PolicyMatch[index] = decodeMatchInfo(raw)
		}
	}

	doc.PolicyRules = decodePolicyRules(fields)

	return doc
}

func decodePricingResult(raw any) model.PricingResult {
	fields, ok := object(raw)
	if !ok {
		return model.PricingResult{}
	}

	result := model.PricingResult{
		Number:               text(fields["number"]),
		TotalPrice:           decodeMoney(fields["total_price"]),
		ValidatingCarrier:    text(fields["validating_carrier"]),
		PTCType:              text(fields["ptc_type"]),
		PriceQuoteKey:        text(fields["price_quote_key"]),
		PricingCommandNumber: text(fields["pricing_command_number"]),
	}

	if sources, ok := array(fields["rules_source"]); ok {
		result.RulesSource = textList(sources)
	}

	if components, ok := array(fields["fare_components"]); ok {
		result.FareComponents = make([]model.FareComponent, 0, len(components))
		for _, c := range components {
			result.FareComponents = append(result.FareComponents, decodeFareComponent(c))
		}
	}

	if penalties, ok := object(fields["penalties"]); ok {
		set := &model.PenaltySet{
			ChangePenalty: decodeMoney(penalties["change_penalty"]),
			RefundPenalty: decodeMoney(penalties["refund_penalty"]),
		}
		if refs, ok := array(penalties["reference_list"]); ok {
			set.ReferenceList = textList(refs)
		}
		result.Penalties = set
	}

	return result
}

func decodeMoney(raw any) *model.Money {
	fields, ok := object(raw)
	if !ok {
		return nil
	}
	return &model.Money{
		Amount:   text(fields["amount"]),
		Currency: text(fields["currency"]),
	}
}

func decodeFareComponent(raw any) model.FareComponent {
	fields, ok := object(raw)
	if !ok {
		return model.FareComponent{}
	}

	component := model.FareComponent{
		FareBasis:        text(fields["fare_basis"]),
		FareFamily:       text(fields["fare_family"]),
		PrivateIndicator: text(fields["private_indicator"]),
	}

	if segments, ok := array(fields["segments"]); ok {
		component.Segments = make([]model.Segment, 0, len(segments))
		for _, s := range segments {
			component.Segments = append(component.Segments, decodeSegment(s))
		}
	}

	return component
}

func decodeSegment(raw any) model.Segment {
	fields, ok := object(raw)
	if !ok {
		return model.Segment{}
	}

	segment := model.Segment{
		BookingClass: text(fields["booking_class"]),
	}

	if value, present := fields["carry_on_allowed"]; present {
		if value == nil {
			segment.CarryOn = model.Flag{State: model.FlagNull}
		} else {
			segment.CarryOn = model.Flag{State: model.FlagSet, Truthy: truthy(value)}
		}
	}

	return segment
}

func decodeCheckSet(raw any) model.CheckSet {
	set := make(model.CheckSet)

	fields, ok := object(raw)
	if !ok {
		return set
	}

	for name, value := range fields {
		check, ok := object(value)
		if !ok {
			set[name] = model.Check{}
			continue
		}
		set[name] = model.Check{
			Result:      triState(check["result"]),
			ShouldCheck: truthy(check["should_check"]),
		}
	}

	return set
}

func decodeMatchInfo(raw any) model.MatchInfo {
	fields, ok := object(raw)
	if !ok {
		return model.MatchInfo{}
	}
	return model.MatchInfo{
		ChangeMatch: decodeMatchResult(fields["change_match"]),
		RefundMatch: decodeMatchResult(fields["refund_match"]),
	}
}

func decodeMatchResult(raw any) model.MatchResult {
	fields, ok := object(raw)
	if !ok {
		return model.MatchResult{}
	}

	result := model.MatchResult{
		IsMatched: truthy(fields["is_matched"]),
	}
	if message := fields["message"]; truthy(message) {
		result.Message = text(message).Value()
	}

	return result
}

// decodePolicyRules follows account.configuration.pricing.policies.policy_rule.
func decodePolicyRules(fields map[string]any) *[]model.PolicyRule {
	node := any(fields)
	for _, key := range []string{"account", "configuration", "pricing", "policies", "policy_rule"} {
		parent, ok := object(node)
		if !ok {
			return nil
		}
		node = parent[key]
	}

	if !truthy(node) {
		return nil
	}

	rules := []model.PolicyRule{}
	if items, ok := array(node); ok {
		for _, item := range items {
			rule, _ := object(item)
			rules = append(rules, model.PolicyRule{
				Name: text(rule["name"]),
				Rule: text(rule["rule"]),
			})
		}
	}

	return &rules
}

// optionIndex accepts only the canonical decimal form of a non-negative index.
func optionIndex(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 || strconv.Itoa(n) != key {
		return 0, false
	}
	return n, true
}

func object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// text keeps strings verbatim and numbers in their literal form.
func text(v any) model.Text {
	switch value := v.(type) {
	case string:
		return model.NewText(value)
	case json.Number:
		return model.NewText(value.String())
	default:
		return model.Text{}
	}
}

// textList stringifies list items. Booleans read "true" or "false"; null and
// nested values come out empty.
func textList(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if b, ok := item.(bool); ok {
			out = append(out, strconv.FormatBool(b))
			continue
		}
		out = append(out, text(item).Value())
	}
	return out
}

func triState(v any) model.TriState {
	b, ok := v.(bool)
	switch {
	case !ok:
		return model.Unknown
	case b:
		return model.True
	default:
		return model.False
	}
}

// truthy treats null, false, 0 and "" as false and everything else as true.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
