package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for date form inputs.
const DateLayout = "2006-01-02"

// ParseDate parses a form date input in the wire layout.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// ValidDate validates that a form input parses as a date.
func ValidDate(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(raw)
			return err == nil
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid date", field),
		},
	}
}

// OptionalDate accepts an empty input and otherwise applies the date check.
func OptionalDate(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(raw) == "" {
				return true
			}
			_, err := ParseDate(raw)
			return err == nil
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid date", field),
		},
	}
}

// DateOnOrAfter validates that a date input is on or after another field's
// resolved date. Equal dates pass. Unparseable inputs on either side pass so
// the type-level rules report them instead.
func DateOnOrAfter(field, raw, otherRaw, otherField string) Rule {
	return Rule{
		Check: func() bool {
			value, err := ParseDate(raw)
			if err != nil {
				return true
			}
			other, err := ParseDate(otherRaw)
			if err != nil {
				return true
			}
			return !value.Before(other)
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be on or after %s", field, otherField),
		},
	}
}
