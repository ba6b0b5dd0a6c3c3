package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	w, err := NewFileWatcher(path)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	msgs := make(chan tea.Msg, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, func(msg tea.Msg) { msgs <- msg }))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(samplePayload), 0o600))

	select {
	case msg := <-msgs:
		loaded, ok := msg.(payloadLoadedMsg)
		require.True(t, ok, "unexpected message %T", msg)
		assert.NoError(t, loaded.err)
		assert.Equal(t, "quote.json", loaded.source)
		assert.Equal(t, samplePayload, loaded.text)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	w, err := NewFileWatcher(path)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	msgs := make(chan tea.Msg, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, func(msg tea.Msg) { msgs <- msg }))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o600))

	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message %#v", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewFileWatcher(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.NotPanics(t, w.Stop)
}
