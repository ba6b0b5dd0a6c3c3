package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AnalyzeSuccessThenFailure(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.Load(fullPayload))
	assert.True(t, s.HasResults())
	assert.NoError(t, s.Err)

	err := s.Load("{broken")
	require.Error(t, err)
	assert.False(t, s.HasResults(), "a failed parse drops the previous document")
	assert.ErrorIs(t, s.Err, common.ErrInvalidJSON)
	assert.Equal(t, "{broken", s.Input)

	require.NoError(t, s.Load(`{}`))
	assert.True(t, s.HasResults())
	assert.NoError(t, s.Err)
}

func TestSession_BlankAnalyzeIsNoop(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load(fullPayload))
	doc := s.Document

	s.SetInput("  \n\t")
	assert.False(t, s.CanAnalyze())
	require.NoError(t, s.Analyze())
	assert.Same(t, doc, s.Document)
	assert.NoError(t, s.Err)
}

func TestSession_ClearAfterError(t *testing.T) {
	s := NewSession()
	require.Error(t, s.Load("nope"))

	s.Clear()

	assert.Empty(t, s.Input)
	assert.Nil(t, s.Document)
	assert.NoError(t, s.Err)
	assert.False(t, s.CanAnalyze())
}

func TestSession_ReanalyzeIsIdempotent(t *testing.T) {
	s := NewSession()
	s.SetInput(fullPayload)

	require.NoError(t, s.Analyze())
	first := report.Build(s.Document)

	require.NoError(t, s.Analyze())
	second := report.Build(s.Document)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-analysis changed the rendered state (-first +second):\n%s", diff)
	}
}
