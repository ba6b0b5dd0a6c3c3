package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/prussyuval/pricings-view/internal/cli"
	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/config"
	"github.com/prussyuval/pricings-view/internal/report"
	"github.com/prussyuval/pricings-view/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output formats of the render command.
const (
	formatText     = "text"
	formatPretty   = "pretty"
	formatMarkdown = "markdown"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the analysis of a pricing payload",
		Long: `Render the same breakdown the interactive view shows, once, to stdout.

The payload is read from the given file, or from stdin when the file is
omitted or "-". Invalid JSON exits with status 1.

Examples:
  # Styled terminal output
  pricings render quote.json

  # Markdown for a ticket
  pricings render quote.json --format markdown --out quote.md

  # Markdown rendered for the terminal, no colors
  cat quote.json | pricings render --format pretty --no-color`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().String("format", formatText, "Output format (text, pretty, markdown)")
	cmd.Flags().Int("width", 0, "Layout width in columns (default 100)")
	cmd.Flags().Bool("no-color", false, "Disable colors and styling")
	cmd.Flags().String("out", "", "Write the report to a file instead of stdout")

	_ = viper.BindPFlag(config.KeyRenderFormat, cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag(config.KeyRenderWidth, cmd.Flags().Lookup("width"))

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	format := viper.GetString(config.KeyRenderFormat)
	width := viper.GetInt(config.KeyRenderWidth)
	noColor, _ := cmd.Flags().GetBool("no-color")
	outFile, _ := cmd.Flags().GetString("out")

	theme, err := configuredTheme()
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, report.Build(doc), format, width, theme, !noColor); err != nil {
		return err
	}

	if outFile == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	path := config.ExpandPath(outFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Report written to "+path))
	return nil
}

// writeReport renders r in the given format to w.
func writeReport(w io.Writer, r report.Report, format string, width int, theme themes.Theme, color bool) error {
	var out string

	switch format {
	case formatText, "":
		out = report.NewFormatter(theme, width).Format(r) + "\n"
	case formatMarkdown:
		out = report.NewMarkdownFormatter().Format(r)
	case formatPretty:
		rendered, err := report.RenderMarkdown(report.NewMarkdownFormatter().Format(r), width, color)
		if err != nil {
			return err
		}
		out = rendered
	default:
		return fmt.Errorf("%w: invalid format %q (valid options: text, pretty, markdown)", common.ErrInvalidConfig, format)
	}

	_, err := io.WriteString(w, out)
	return err
}
