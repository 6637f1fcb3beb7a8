// ABOUTME: Validation primitives shared by all log types.
// ABOUTME: Defines ValidationError and per-field range checks.
package models

import (
	"fmt"
	"time"
)

// ValidationError describes a rejected log field. Submissions failing
// validation are rejected before any storage or score computation runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// checkDate verifies an ISO YYYY-MM-DD date string.
func checkDate(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return &ValidationError{Field: field, Reason: "must be YYYY-MM-DD"}
	}
	return nil
}

// checkScale verifies a 1-5 rating.
func checkScale(field string, value int) error {
	if value < 1 || value > 5 {
		return &ValidationError{Field: field, Reason: "must be between 1 and 5"}
	}
	return nil
}

// checkNonNegative verifies a float amount is >= 0.
func checkNonNegative(field string, value float64) error {
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

// checkNonNegativeInt verifies an int amount is >= 0.
func checkNonNegativeInt(field string, value int) error {
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
