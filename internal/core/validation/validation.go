// Package validation runs declarative field rules against domain payloads.
// Unlike request-shape validation at the transport layer, these rulesets carry
// the exact client-facing messages and are evaluated exhaustively so one
// request surfaces every simultaneous violation.
package validation

import (
	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// Rule binds a predicate to a field name and the message reported when the
// predicate fails.
type Rule[T any] struct {
	Field   string
	Message string
	Valid   func(T) bool
}

// Ruleset is an ordered collection of rules for one payload type.
type Ruleset[T any] []Rule[T]

// Validate evaluates every rule regardless of earlier failures and returns
// the violations in declaration order. An empty result means the payload is
// valid.
func (rs Ruleset[T]) Validate(payload T) []domain.Violation {
	var violations []domain.Violation
	for _, rule := range rs {
		if !rule.Valid(payload) {
			violations = append(violations, domain.Violation{
				FieldName: rule.Field,
				Message:   rule.Message,
			})
		}
	}
	return violations
}
