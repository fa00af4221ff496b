package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric constrains the generic numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FieldError describes a single violated constraint on a named field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is an ordered collection of field errors. It implements the
// error interface so validation results can travel through normal error
// returns.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, e := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field has at least one error.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// First returns the first error message for a field, or "" when clean.
func (fe FieldErrors) First(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Get returns every message recorded for a field, in evaluation order.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, e := range fe {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns the distinct failed field names in evaluation order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range fe {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// Map converts the collection into a field-to-messages mapping, the shape
// shared with API validation error bodies.
func (fe FieldErrors) Map() map[string][]string {
	m := make(map[string][]string, len(fe))
	for _, e := range fe {
		m[e.Field] = append(m[e.Field], e.Message)
	}
	return m
}

// IsEmpty reports whether the collection holds no errors.
func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Rule pairs a check closure with the field error reported on failure.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply evaluates every rule and collects all failures.
func Apply(rules ...Rule) error {
	var errs FieldErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ApplyGrouped evaluates every rule but records only the first violated
// constraint per field. Later rules for an already-failed field are skipped
// entirely, so an out-of-range check never runs on input that already failed
// a type check.
func ApplyGrouped(rules ...Rule) error {
	var errs FieldErrors
	failed := make(map[string]bool)

	for _, rule := range rules {
		if failed[rule.Error.Field] {
			continue
		}
		if !rule.Check() {
			errs = append(errs, rule.Error)
			failed[rule.Error.Field] = true
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// When gates a set of rules on a condition derived from another field's
// resolved value. When the condition is false the rules are inert.
func When(cond bool, rules ...Rule) []Rule {
	if !cond {
		return nil
	}
	return rules
}

// ExtractFieldErrors extracts FieldErrors from an error, or nil when the
// error is not a validation failure.
func ExtractFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}

// IsFieldErrors reports whether the error carries field-level violations.
func IsFieldErrors(err error) bool {
	if err == nil {
		return false
	}

	var fieldErrs FieldErrors
	return errors.As(err, &fieldErrs)
}
