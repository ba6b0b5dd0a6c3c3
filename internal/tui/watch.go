package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// FileWatcher reloads a payload file when it changes on disk. The parent
// directory is watched so editors that save by rename are picked up too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
	path     string
	debounce time.Duration
	mu       sync.Mutex
	running  bool
}

// NewFileWatcher creates a watcher for the file at path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     abs,
		debounce: defaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and delivers reloads through send. It does not block.
func (w *FileWatcher) Start(ctx context.Context, send func(tea.Msg)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.running = true

	slog.Debug("watching payload file", "path", w.path)
	go w.run(ctx, send)

	return nil
}

// Stop stops the watcher and waits for its loop to exit.
func (w *FileWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		slog.Warn("failed to close file watcher", "error", err)
	}
}

func (w *FileWatcher) run(ctx context.Context, send func(tea.Msg)) {
	defer close(w.doneCh)

	// Rapid saves collapse into one reload.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			send(watchErrorMsg{err: err})

		case <-pending:
			pending = nil
			send(w.read())
		}
	}
}

// relevant reports whether event may have changed the file's contents.
func (w *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *FileWatcher) read() payloadLoadedMsg {
	data, err := os.ReadFile(w.path)
	return payloadLoadedMsg{
		err:    err,
		source: filepath.Base(w.path),
		text:   string(data),
	}
}
