package models

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFieldError lists required fields absent from a payload.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidEnumError reports a value outside an enumerated domain.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// InvalidDateError reports a date field that does not parse.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// InvalidValueError reports a field that breaks a range or format rule.
type InvalidValueError struct {
	Field string
	Rule  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: violates %s", e.Field, e.Rule)
}

// IsValidationError reports whether err was caused by client input.
func IsValidationError(err error) bool {
	var (
		missing *MissingFieldError
		enum    *InvalidEnumError
		date    *InvalidDateError
		value   *InvalidValueError
	)
	return errors.As(err, &missing) || errors.As(err, &enum) ||
		errors.As(err, &date) || errors.As(err, &value)
}
