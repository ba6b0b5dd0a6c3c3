package model

// TriState is a check result that may be true, false or unknown.
type TriState int

const (
	// Unknown is any result other than the JSON literals true and false.
	Unknown TriState = iota
	// True is the JSON literal true.
	True
	// False is the JSON literal false.
	False
)

// String returns a string representation of the tri-state.
func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Check is one named policy verification tied to a pricing option.
type Check struct {
	Result      TriState
	ShouldCheck bool
}

// CheckSet maps check names (cabin_class_preserved, ...) to their results.
type CheckSet map[string]Check

// MatchResult is the outcome of comparing one policy term against the reference policy.
type MatchResult struct {
	Message   string
	IsMatched bool
}

// MatchInfo holds the change and refund match results of a pricing option.
type MatchInfo struct {
	ChangeMatch MatchResult
	RefundMatch MatchResult
}
