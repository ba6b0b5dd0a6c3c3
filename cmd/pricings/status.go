package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/prussyuval/pricings-view/internal/cli"
	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/policy"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the status command.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [file|-]",
		Short: "Print the policy statuses of every pricing option",
		Long: `Print, per pricing option, the general policy status
(passed, failed, partial, not-checked, unknown) and the policy match status
(matched, not-matched, unknown).

Examples:
  pricings status quote.json
  pricings status quote.json --output json | jq '.options[].general_policy'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatus,
	}

	cmd.Flags().StringP("output", "o", outputTable, "Output format (table, json, yaml)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	doc, err := loadDocument(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	return writeStatus(cmd.OutOrStdout(), report.Summarize(report.Build(doc)), output)
}

// writeStatus encodes s in the given output format to w.
func writeStatus(w io.Writer, s report.Summary, output string) error {
	switch output {
	case outputTable, "":
		rows := make([][]string, 0, len(s.Options))
		for _, o := range s.Options {
			rows = append(rows, []string{
				o.Number,
				o.QuoteKey,
				o.TotalPrice,
				generalStyle(o.GeneralPolicy).Render(string(o.GeneralPolicy)),
				matchStyle(o.PolicyMatch).Render(string(o.PolicyMatch)),
			})
		}
		_, err := fmt.Fprintf(w, "Transaction ID: %s\n%s\n", s.TransactionID,
			cli.RenderTable([]string{"Option", "Quote Key", "Total Price", "General Policy", "Policy Match"}, rows))
		return err

	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode status: %w", err)
		}
		return nil

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode status: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("%w: invalid output %q (valid options: table, json, yaml)", common.ErrInvalidConfig, output)
	}
}

func generalStyle(status policy.GeneralStatus) lipgloss.Style {
	switch status {
	case policy.GeneralPassed:
		return cli.SuccessStyle
	case policy.GeneralFailed:
		return cli.ErrorStyle
	case policy.GeneralPartial:
		return cli.WarningStyle
	default:
		return cli.SubtleStyle
	}
}

func matchStyle(status policy.MatchStatus) lipgloss.Style {
	switch status {
	case policy.Matched:
		return cli.SuccessStyle
	case policy.NotMatched:
		return cli.ErrorStyle
	default:
		return cli.SubtleStyle
	}
}
