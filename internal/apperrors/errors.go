// Package apperrors defines the error taxonomy the record services surface
// to the API boundary: not-found, validation, and constraint violations.
// Anything else is treated as a store failure and mapped to a 500.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")
)

// NotFound reports an absent row, e.g. NotFound("Customer", 42).
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// Validation reports a missing or malformed required field.
func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

// Constraint reports a unique or foreign-key violation.
func Constraint(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConstraintViolation)
}
