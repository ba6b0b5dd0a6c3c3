// Package policy derives display statuses from the pre-computed policy flags
// of a pricing option. Nothing here evaluates a policy; it only aggregates
// the verdicts already present in the payload.
package policy

import "github.com/prussyuval/pricings-view/internal/model"

// GeneralStatus is the overall result of the general policy checks of one option.
type GeneralStatus string

const (
	// GeneralPassed means every evaluated check returned true.
	GeneralPassed GeneralStatus = "passed"
	// GeneralFailed means at least one evaluated check returned false.
	GeneralFailed GeneralStatus = "failed"
	// GeneralPartial means evaluated checks mix true and unknown, with no false.
	GeneralPartial GeneralStatus = "partial"
	// GeneralNotChecked means no check was marked for evaluation.
	GeneralNotChecked GeneralStatus = "not-checked"
	// GeneralUnknown means the payload has no check set for the option.
	GeneralUnknown GeneralStatus = "unknown"
)

// MatchStatus is the overall change/refund policy match of one option.
// Unlike GeneralStatus it has no partial state.
type MatchStatus string

const (
	// Matched means both the change and the refund terms matched.
	Matched MatchStatus = "matched"
	// NotMatched means at least one of the two terms did not match.
	NotMatched MatchStatus = "not-matched"
	// MatchUnknown means the payload has no match info for the option.
	MatchUnknown MatchStatus = "unknown"
)

// CheckDisplay is the visual state of a single named check.
type CheckDisplay string

const (
	// CheckNotChecked is shown when the check was not marked for evaluation.
	CheckNotChecked CheckDisplay = "Not checked"
	// CheckPassed is shown for a true result.
	CheckPassed CheckDisplay = "Passed"
	// CheckFailed is shown for a false result.
	CheckFailed CheckDisplay = "Failed"
	// CheckUnknown is shown for any other result.
	CheckUnknown CheckDisplay = "Unknown"
)

// General aggregates a check set. ok=false means the option has no check set.
// Every entry of the set takes part, not only the well-known names.
func General(set model.CheckSet, ok bool) GeneralStatus {
	if !ok {
		return GeneralUnknown
	}

	evaluated := 0
	allPassed := true
	anyFailed := false
	for _, check := range set {
		if !check.ShouldCheck {
			continue
		}
		evaluated++
		if check.Result != model.True {
			allPassed = false
		}
		if check.Result == model.False {
			anyFailed = true
		}
	}

	switch {
	case evaluated == 0:
		return GeneralNotChecked
	case allPassed:
		return GeneralPassed
	case anyFailed:
		return GeneralFailed
	default:
		return GeneralPartial
	}
}

// Match aggregates the change and refund match results. ok=false means the
// option has no match info.
func Match(info model.MatchInfo, ok bool) MatchStatus {
	if !ok {
		return MatchUnknown
	}
	if info.ChangeMatch.IsMatched && info.RefundMatch.IsMatched {
		return Matched
	}
	return NotMatched
}

// Display returns the visual state of one check. A check missing from its
// set is the zero Check and therefore shows as not checked.
func Display(check model.Check) CheckDisplay {
	if !check.ShouldCheck {
		return CheckNotChecked
	}

	switch check.Result {
	case model.True:
		return CheckPassed
	case model.False:
		return CheckFailed
	default:
		return CheckUnknown
	}
}
