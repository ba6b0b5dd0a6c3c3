package model

// Text is an optional display scalar.
type Text struct {
	value   string
	present bool
}

// NewText returns a present Text.
func NewText(value string) Text {
	return Text{value: value, present: true}
}

// Value returns the text, or "" when absent.
func (t Text) Value() string {
	return t.value
}

// Present reports whether the payload carried a displayable value.
func (t Text) Present() bool {
	return t.present
}

// Or returns the text, or fallback when it is absent or empty.
func (t Text) Or(fallback string) string {
	if !t.present || t.value == "" {
		return fallback
	}
	return t.value
}

// FlagState tells apart a missing key, an explicit null and a value.
type FlagState int

const (
	// FlagAbsent means the key was not in the payload.
	FlagAbsent FlagState = iota
	// FlagNull means the key was present with a null value.
	FlagNull
	// FlagSet means the key held a non-null value.
	FlagSet
)

// Flag is a nullable boolean-ish value evaluated with JSON truthiness.
type Flag struct {
	State  FlagState
	Truthy bool
}

// IsNull reports whether the payload carried an explicit null.
func (f Flag) IsNull() bool {
	return f.State == FlagNull
}
