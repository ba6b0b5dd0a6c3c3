package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// New creates the analyzer program. The caller runs it with Run.
func New(ctx context.Context, opts ...Option) *tea.Program {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return tea.NewProgram(
		newModel(cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

// Run starts the interactive analyzer and blocks until the user quits or ctx
// is cancelled. With WithWatch the payload file is reloaded on every change.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := New(ctx, opts...)

	if cfg.WatchPath != "" {
		watcher, err := NewFileWatcher(cfg.WatchPath)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx, program.Send); err != nil {
			watcher.Stop()
			return err
		}
		defer watcher.Stop()
	}

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
