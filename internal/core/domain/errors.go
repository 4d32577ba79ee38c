package domain

import (
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("missing or invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is the common kind behind every per-entity not-found sentinel,
// so callers can match either the entity or the class.
var ErrNotFound = errors.New("not found")

var ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
var ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

// ErrProductInUse marks a deletion blocked because order items still
// reference the product.
var ErrProductInUse = errors.New("referential integrity failure")

// Violation is a single violated field rule.
type Violation struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ValidationError aggregates every violated rule of one request. The list
// preserves ruleset declaration order so error display is deterministic.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "Invalid data"
}

// NewValidationError wraps a non-empty violation list. Returns nil when the
// list is empty so callers can do `if err := ...; err != nil`.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
