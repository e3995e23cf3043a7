package law

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError(ErrCodeMissingClock, "speeding law requires a date source")
	assert.Equal(t, "MISSING_CLOCK: speeding law requires a date source", err.Error())
}

func TestStateErrorMessage(t *testing.T) {
	err := NewNoViolationError("speeding")
	assert.Contains(t, err.Error(), "NO_VIOLATION")
	assert.Contains(t, err.Error(), "law=speeding")

	bare := &StateError{Code: ErrCodeNoViolation, Message: "nope"}
	assert.Equal(t, "NO_VIOLATION: nope", bare.Error())
}

func TestIsConfigErrorUnwrapsWrappedErrors(t *testing.T) {
	err := NewConfigError(ErrCodeMissingLaws, "issuer requires a law list")
	wrapped := fmt.Errorf("constructing issuer: %w", err)

	assert.True(t, IsConfigError(err))
	assert.True(t, IsConfigError(wrapped))
	assert.False(t, IsConfigError(errors.New("something else")))
	assert.False(t, IsConfigError(nil))
}

func TestIsStateErrorUnwrapsWrappedErrors(t *testing.T) {
	err := NewNoViolationError("speeding")
	wrapped := fmt.Errorf("issuing: %w", err)

	assert.True(t, IsStateError(err))
	assert.True(t, IsStateError(wrapped))
	assert.False(t, IsStateError(errors.New("something else")))
	assert.False(t, IsStateError(NewConfigError(ErrCodeMissingName, "x")))
}
