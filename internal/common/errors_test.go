package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := fmt.Errorf("%w: unexpected end", ErrInvalidJSON)
	err := NewUserError(InvalidJSONMessage, cause)

	assert.Equal(t, InvalidJSONMessage+": invalid JSON: unexpected end", err.Error())
	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.Equal(t, InvalidJSONMessage, UserMessage(err))

	wrapped := fmt.Errorf("render: %w", err)
	assert.Equal(t, InvalidJSONMessage, UserMessage(wrapped))
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("nothing to show", nil)
	assert.Equal(t, "nothing to show", err.Error())
	assert.NoError(t, errors.Unwrap(err))
}

func TestUserMessage_PlainErrors(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}
