package main

import (
	"fmt"
	"os"

	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/config"
	"github.com/prussyuval/pricings-view/internal/tui"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive pricing analyzer",
		Long: `Open a full-screen analyzer with a JSON paste area and a scrollable
results pane.

Keys:
  Ctrl+R  analyze the input
  Ctrl+X  clear input and results
  Tab     switch focus between input and results
  Esc     quit

Examples:
  # Start with an empty paste area
  pricings view

  # Load a payload and reload it whenever the file changes
  pricings view --file quote.json --watch`,
		Args: cobra.NoArgs,
		RunE: runView,
	}

	cmd.Flags().StringP("file", "f", "", "Payload file to load on startup")
	cmd.Flags().Bool("watch", false, "Reload the payload file when it changes (requires --file)")

	return cmd
}

func runView(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	watch, _ := cmd.Flags().GetBool("watch")

	if watch && file == "" {
		return fmt.Errorf("--watch requires --file")
	}

	theme, err := configuredTheme()
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithTheme(theme)}

	if file != "" {
		path := config.ExpandPath(file)
		data, err := os.ReadFile(path) // #nosec G304 - path is supplied by the user
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		opts = append(opts, tui.WithInitialInput(string(data)))

		if watch {
			opts = append(opts, tui.WithWatch(path))
		}
	}

	common.LogInfo("Starting analyzer", common.Fields{"file": file, "watch": watch})

	return tui.Run(cmd.Context(), opts...)
}
