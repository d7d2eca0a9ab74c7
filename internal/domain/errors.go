package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every InvalidInputError via errors.Is
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a calculation parameter that failed validation
type InvalidInputError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// NewInvalidInput creates an InvalidInputError for field
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any field error
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AsInvalidInput extracts the InvalidInputError from an error chain
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var inv *InvalidInputError
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}
