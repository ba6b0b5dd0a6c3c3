package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/config"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotePayload = `{
  "transaction_id": "T-42",
  "ptc_type": "ADT",
  "cycle_type": "ONE_WAY",
  "pricing_results": [
    {
      "number": "1",
      "price_quote_key": "PQ1",
      "total_price": {"amount": "450.00", "currency": "USD"},
      "validating_carrier": "LH"
    }
  ],
  "general_policy_offers_info": {"0": {"cabin_class_preserved": {"result": true, "should_check": true}}},
  "policy_match_offers_info": {"0": {"change_match": {"is_matched": true}, "refund_match": {"is_matched": false}}}
}`

func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quote.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWriteReport_Formats(t *testing.T) {
	doc, err := loadDocument(context.Background(), strings.NewReader(quotePayload), nil)
	require.NoError(t, err)
	r := report.Build(doc)

	tests := []struct {
		name     string
		format   string
		contains []string
	}{
		{
			name:     "text",
			format:   formatText,
			contains: []string{"Analysis Results", "Transaction ID: T-42", "Pricing Option #1", "450.00 USD"},
		},
		{
			name:     "markdown",
			format:   formatMarkdown,
			contains: []string{"# Analysis Results", "## Pricing Option #1", "**450.00 USD**"},
		},
		{
			name:     "pretty",
			format:   formatPretty,
			contains: []string{"Analysis Results", "Pricing Option #1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeReport(&buf, r, tt.format, 120, themes.Default, false))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteReport_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeReport(&buf, report.Report{}, "html", 0, themes.Default, false)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Empty(t, buf.String())
}

func TestRenderCmd_File(t *testing.T) {
	path := writePayload(t, quotePayload)

	cmd := renderCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--format", "markdown"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Transaction ID: `T-42`")
}

func TestRenderCmd_Stdin(t *testing.T) {
	cmd := renderCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(quotePayload))
	cmd.SetArgs([]string{"-", "--format", "markdown"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "## Pricing Option #1")
}

func TestRenderCmd_OutFile(t *testing.T) {
	path := writePayload(t, quotePayload)
	dest := filepath.Join(t.TempDir(), "quote.md")

	cmd := renderCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{path, "--format", "markdown", "--out", dest})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Report written to "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Transaction ID: `T-42`")
}

func TestRenderCmd_OutFileNotWrittenOnInvalidFormat(t *testing.T) {
	path := writePayload(t, quotePayload)
	dest := filepath.Join(t.TempDir(), "quote.txt")

	cmd := renderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--format", "html", "--out", dest})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.NoFileExists(t, dest)
}

func TestRenderCmd_InvalidJSON(t *testing.T) {
	path := writePayload(t, `{"transaction_id": }`)

	cmd := renderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidJSON)
	assert.Equal(t, common.InvalidJSONMessage, common.UserMessage(err))
}

func TestRenderCmd_EmptyStdin(t *testing.T) {
	cmd := renderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("  \n"))
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, common.ErrNoInput)
}

func TestConfiguredTheme(t *testing.T) {
	t.Cleanup(func() { viper.Set(config.KeyTheme, "") })

	viper.Set(config.KeyTheme, "")
	theme, err := configuredTheme()
	require.NoError(t, err)
	assert.Equal(t, themes.Default.Primary, theme.Primary)

	viper.Set(config.KeyTheme, "catppuccin-mocha")
	theme, err = configuredTheme()
	require.NoError(t, err)
	assert.Equal(t, themes.CatppuccinMocha.Primary, theme.Primary)

	viper.Set(config.KeyTheme, "solarized")
	_, err = configuredTheme()
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "pricings version dev\n", out.String())
}
