package law

import (
	"errors"
	"fmt"
)

// ConfigError represents an invalid-configuration error detected at
// construction time.
//
// Configuration errors include:
//   - Missing clock: a law was constructed without a date source
//   - Missing laws: an issuer was constructed with a nil law list
//   - Missing name: an issuer was constructed without a name
//   - Invalid thresholds: severity thresholds are not strictly increasing
//   - Invalid allowance: the birthday allowance is negative
//
// These are programming or wiring mistakes, not runtime conditions; the
// caller must fix the construction arguments.
type ConfigError struct {
	// Code identifies the error category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string
}

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeMissingClock indicates a law has no date source.
	ErrCodeMissingClock ConfigErrorCode = "MISSING_CLOCK"

	// ErrCodeMissingLaws indicates an issuer has a nil law list.
	ErrCodeMissingLaws ConfigErrorCode = "MISSING_LAWS"

	// ErrCodeMissingName indicates an issuer has an empty name.
	ErrCodeMissingName ConfigErrorCode = "MISSING_NAME"

	// ErrCodeInvalidThresholds indicates thresholds are not strictly increasing.
	ErrCodeInvalidThresholds ConfigErrorCode = "INVALID_THRESHOLDS"

	// ErrCodeInvalidAllowance indicates a negative birthday allowance.
	ErrCodeInvalidAllowance ConfigErrorCode = "INVALID_ALLOWANCE"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigError returns true if the error is a configuration error.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// NewConfigError creates a ConfigError with the given code and message.
func NewConfigError(code ConfigErrorCode, message string) *ConfigError {
	return &ConfigError{Code: code, Message: message}
}

// StateError represents a violation of the citation invariant: Cite was
// invoked for inputs whose severity is None. The issuer always gates on
// ShouldCite, so seeing this error means a caller skipped the gate.
type StateError struct {
	// Code identifies the error category.
	Code StateErrorCode

	// Message is a human-readable description.
	Message string

	// LawName identifies the law that refused to cite.
	LawName string
}

// StateErrorCode categorizes state errors.
type StateErrorCode string

// ErrCodeNoViolation indicates Cite was called when severity is None.
const ErrCodeNoViolation StateErrorCode = "NO_VIOLATION"

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.LawName != "" {
		return fmt.Sprintf("%s: %s (law=%s)", e.Code, e.Message, e.LawName)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsStateError returns true if the error is a state error.
// Uses errors.As to handle wrapped errors.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// NewNoViolationError creates a StateError for a Cite call whose
// severity would be None.
func NewNoViolationError(lawName string) *StateError {
	return &StateError{
		Code:    ErrCodeNoViolation,
		Message: "severity is None; citation must not be issued",
		LawName: lawName,
	}
}
