package vehicles

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidReference means the submitted makeId does not resolve to a
	// known vehicle make.
	ErrInvalidReference = errors.New("vehicle make does not exist")
	// ErrNotFound means the update target does not exist.
	ErrNotFound = errors.New("vehicle not found")
	// ErrNotOwner means the caller is not the owner of the target vehicle.
	ErrNotOwner = errors.New("vehicle belongs to another user")
)

// Violation is a field-level rule failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in a payload, so the
// boundary can surface per-field messages rather than one opaque string.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns one human-readable message per violation.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return msgs
}
