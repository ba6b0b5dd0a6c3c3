// Package pricing turns raw pricing payload text into a document and keeps
// the input state of an analysis session.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prussyuval/pricings-view/internal/cli"
	"github.com/prussyuval/pricings-view/internal/common"
	"github.com/prussyuval/pricings-view/internal/config"
	"github.com/prussyuval/pricings-view/internal/model"
)

// SyntaxError locates the first syntax problem in a payload.
type SyntaxError struct {
	Err    error
	Offset int64
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d, column %d: %v", common.ErrInvalidJSON, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%v: %v", common.ErrInvalidJSON, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{common.ErrInvalidJSON, e.Err}
}

// Parse decodes raw as a single JSON value. Any syntactically valid value is
// accepted; anything else fails with a UserError carrying the fixed message.
func Parse(raw string) (*model.Document, error) {
	data := []byte(raw)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, invalid(data, err)
	}

	// Exactly one value is allowed.
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected trailing data %v", tok)
		}
		return nil, invalid(data, err)
	}

	doc := decodeDocument(root)
	common.LogDebug("Parsed pricing payload", common.Fields{
		"bytes":          len(data),
		"pricing_count":  len(doc.PricingResults),
		"general_policy": len(doc.GeneralPolicy),
		"policy_match":   len(doc.PolicyMatch),
	})

	return doc, nil
}

// ParseFile reads and parses the payload at path. "~" and environment
// variables in path are expanded.
func ParseFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(config.ExpandPath(path)) // #nosec G304 - path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return Parse(string(data))
}

// ParseReader reads r to the end and parses it. Reading stops early if ctx is canceled.
func ParseReader(ctx context.Context, r io.Reader) (*model.Document, error) {
	reader := cli.NewNonBlockingReader(r)
	data, err := reader.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, common.ErrNoInput
	}
	return Parse(string(data))
}

func invalid(data []byte, err error) error {
	syntaxErr := &SyntaxError{Err: err}

	var jsonErr *json.SyntaxError
	switch {
	case errors.As(err, &jsonErr):
		syntaxErr.Offset = jsonErr.Offset
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		syntaxErr.Offset = int64(len(data))
	}
	if syntaxErr.Offset > 0 {
		syntaxErr.Line, syntaxErr.Column = calculatePosition(data, syntaxErr.Offset)
	}

	common.LogDebug("Rejected pricing payload", common.Fields{
		"offset": syntaxErr.Offset,
		"line":   syntaxErr.Line,
		"column": syntaxErr.Column,
		"error":  err.Error(),
	})

	return common.NewUserError(common.InvalidJSONMessage, syntaxErr)
}

// calculatePosition converts a byte offset to line and column numbers.
func calculatePosition(data []byte, offset int64) (line int, column int) {
	line = 1
	column = 1

	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return
}
