package tui

import (
	"github.com/prussyuval/pricings-view/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	InitialInput string
	WatchPath    string
	Width        int
	Height       int
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithInitialInput pre-fills the input box and analyzes it on startup.
func WithInitialInput(text string) Option {
	return func(c *Config) {
		c.InitialInput = text
	}
}

// WithWatch reloads the payload whenever the file at path changes.
func WithWatch(path string) Option {
	return func(c *Config) {
		c.WatchPath = path
	}
}

// WithHelp toggles the key help line.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
