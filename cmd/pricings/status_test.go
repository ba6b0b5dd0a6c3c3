package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/policy"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatusCmd_JSON(t *testing.T) {
	path := writePayload(t, quotePayload)

	cmd := statusCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--output", "json"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var got report.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, "T-42", got.TransactionID)
	require.Len(t, got.Options, 1)
	assert.Equal(t, "1", got.Options[0].Number)
	assert.Equal(t, "PQ1", got.Options[0].QuoteKey)
	assert.Equal(t, "450.00 USD", got.Options[0].TotalPrice)
	assert.Equal(t, policy.GeneralPassed, got.Options[0].GeneralPolicy)
	assert.Equal(t, policy.NotMatched, got.Options[0].PolicyMatch)
}

func TestWriteStatus_YAML(t *testing.T) {
	s := report.Summary{
		TransactionID: "T-1",
		Options: []report.OptionSummary{
			{Number: "1", GeneralPolicy: policy.GeneralPartial, PolicyMatch: policy.MatchUnknown},
		},
	}

	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, s, outputYAML))

	var got report.Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, s, got)
	assert.Contains(t, out.String(), "general_policy: partial")
}

func TestWriteStatus_Table(t *testing.T) {
	s := report.Summary{
		TransactionID: "T-1",
		Options: []report.OptionSummary{
			{Number: "1", QuoteKey: "PQ1", TotalPrice: "10 EUR", GeneralPolicy: policy.GeneralFailed, PolicyMatch: policy.Matched},
		},
	}

	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, s, outputTable))

	text := out.String()
	assert.Contains(t, text, "Transaction ID: T-1")
	assert.Contains(t, text, "General Policy")
	assert.Contains(t, text, "failed")
	assert.Contains(t, text, "matched")
}

func TestWriteStatus_EmptyOptionsEncodeAsList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeStatus(&out, report.Summarize(report.Report{}), outputJSON))
	assert.Contains(t, out.String(), `"options": []`)
}

func TestWriteStatus_InvalidOutput(t *testing.T) {
	err := writeStatus(&bytes.Buffer{}, report.Summary{}, "xml")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
