package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a malformed request payload or an out-of-enum value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "field required"}
}

func enumError(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value %q is not one of %v", value, allowed),
	}
}
