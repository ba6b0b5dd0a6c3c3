package policy

import (
	"testing"

	"github.com/prussyuval/pricings-view/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGeneral(t *testing.T) {
	tests := []struct {
		name string
		set  model.CheckSet
		ok   bool
		want GeneralStatus
	}{
		{
			name: "absent mapping",
			ok:   false,
			want: GeneralUnknown,
		},
		{
			name: "empty set",
			set:  model.CheckSet{},
			ok:   true,
			want: GeneralNotChecked,
		},
		{
			name: "nothing marked for checking",
			set: model.CheckSet{
				"a": {Result: model.True},
				"b": {Result: model.False},
			},
			ok:   true,
			want: GeneralNotChecked,
		},
		{
			name: "all passed",
			set: model.CheckSet{
				"a": {Result: model.True, ShouldCheck: true},
				"b": {Result: model.True, ShouldCheck: true},
				"c": {Result: model.False},
			},
			ok:   true,
			want: GeneralPassed,
		},
		{
			name: "one failed",
			set: model.CheckSet{
				"a": {Result: model.True, ShouldCheck: true},
				"b": {Result: model.False, ShouldCheck: true},
			},
			ok:   true,
			want: GeneralFailed,
		},
		{
			name: "failed wins over unknown",
			set: model.CheckSet{
				"a": {Result: model.Unknown, ShouldCheck: true},
				"b": {Result: model.False, ShouldCheck: true},
			},
			ok:   true,
			want: GeneralFailed,
		},
		{
			name: "true and unknown",
			set: model.CheckSet{
				"a": {Result: model.True, ShouldCheck: true},
				"b": {Result: model.Unknown, ShouldCheck: true},
			},
			ok:   true,
			want: GeneralPartial,
		},
		{
			name: "unknown only",
			set: model.CheckSet{
				"a": {Result: model.Unknown, ShouldCheck: true},
			},
			ok:   true,
			want: GeneralPartial,
		},
		{
			name: "unnamed checks take part",
			set: model.CheckSet{
				"cabin_class_preserved": {Result: model.True, ShouldCheck: true},
				"custom_check":          {Result: model.False, ShouldCheck: true},
			},
			ok:   true,
			want: GeneralFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, General(tt.set, tt.ok))
		})
	}
}

func TestMatch(t *testing.T) {
	matched := model.MatchResult{IsMatched: true}
	missed := model.MatchResult{}

	tests := []struct {
		name string
		info model.MatchInfo
		ok   bool
		want MatchStatus
	}{
		{name: "absent", ok: false, want: MatchUnknown},
		{name: "both matched", info: model.MatchInfo{ChangeMatch: matched, RefundMatch: matched}, ok: true, want: Matched},
		{name: "refund missed", info: model.MatchInfo{ChangeMatch: matched, RefundMatch: missed}, ok: true, want: NotMatched},
		{name: "change missed", info: model.MatchInfo{ChangeMatch: missed, RefundMatch: matched}, ok: true, want: NotMatched},
		{name: "zero info", ok: true, want: NotMatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.info, tt.ok))
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		check model.Check
		want  CheckDisplay
	}{
		{check: model.Check{}, want: CheckNotChecked},
		{check: model.Check{Result: model.True}, want: CheckNotChecked},
		{check: model.Check{Result: model.True, ShouldCheck: true}, want: CheckPassed},
		{check: model.Check{Result: model.False, ShouldCheck: true}, want: CheckFailed},
		{check: model.Check{Result: model.Unknown, ShouldCheck: true}, want: CheckUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.check))
		})
	}
}

func TestNamedChecks(t *testing.T) {
	assert.Len(t, NamedChecks, 6)

	seen := make(map[string]bool)
	for _, c := range NamedChecks {
		assert.NotEmpty(t, c.Label)
		assert.False(t, seen[c.Field], "duplicate field %s", c.Field)
		seen[c.Field] = true
	}
}
