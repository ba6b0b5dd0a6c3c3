package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader provides context-aware input reading that can be interrupted.
// A pasted payload on stdin may never be terminated, so reads must yield to Ctrl+C.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadAll reads until EOF, respecting context cancellation.
func (r *NonBlockingReader) ReadAll(ctx context.Context) ([]byte, error) {
	type result struct {
		err   error
		value []byte
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := io.ReadAll(r.reader)
		resultCh <- result{value: value, err: err}
	}()

	// The reading goroutine keeps running until the underlying reader returns.
	select {
	case <-ctx.Done():
		return nil, ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}
