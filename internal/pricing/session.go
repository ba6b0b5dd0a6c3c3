package pricing

import (
	"strings"

	"github.com/prussyuval/pricings-view/internal/model"
)

// Session holds the state behind the paste box: the raw input, the last
// successfully parsed document and the last parse error. At most one of
// Document and Err is set.
type Session struct {
	Document *model.Document
	Err      error
	Input    string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetInput replaces the raw input text without parsing it.
func (s *Session) SetInput(text string) {
	s.Input = text
}

// CanAnalyze reports whether the input holds anything besides whitespace.
func (s *Session) CanAnalyze() bool {
	return strings.TrimSpace(s.Input) != ""
}

// Analyze parses the current input. On success the document replaces the
// previous one and the error is cleared; on failure the document is dropped.
// Blank input leaves the session untouched.
func (s *Session) Analyze() error {
	if !s.CanAnalyze() {
		return nil
	}

	doc, err := Parse(s.Input)
	if err != nil {
		s.Document = nil
		s.Err = err
		return err
	}

	s.Document = doc
	s.Err = nil
	return nil
}

// Load replaces the input and analyzes it in one step.
func (s *Session) Load(text string) error {
	s.SetInput(text)
	return s.Analyze()
}

// Clear resets input, document and error.
func (s *Session) Clear() {
	s.Input = ""
	s.Document = nil
	s.Err = nil
}

// HasResults reports whether a document is available for display.
func (s *Session) HasResults() bool {
	return s.Document != nil
}
