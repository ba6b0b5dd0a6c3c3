package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, "info", v.GetString(KeyLogLevel))
	assert.Equal(t, "console", v.GetString(KeyLogFormat))
	assert.Equal(t, "default", v.GetString(KeyTheme))
	assert.Equal(t, "text", v.GetString(KeyRenderFormat))
	assert.Equal(t, 0, v.GetInt(KeyRenderWidth))
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: catppuccin-mocha\nrender:\n  width: 120\n"), 0o600))
	t.Setenv("PRICINGS_LOGGING_LEVEL", "debug")

	v := viper.New()
	require.NoError(t, Load(v, path))

	assert.Equal(t, "catppuccin-mocha", v.GetString(KeyTheme))
	assert.Equal(t, 120, v.GetInt(KeyRenderWidth))
	assert.Equal(t, "debug", v.GetString(KeyLogLevel))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAYLOADS", "/data")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "-", want: "-"},
		{input: "~", want: home},
		{input: "~/quote.json", want: filepath.Join(home, "quote.json")},
		{input: "$PAYLOADS/quote.json", want: "/data/quote.json"},
		{input: "quote.json", want: "quote.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
