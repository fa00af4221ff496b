package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters", field, min),
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, max),
		},
	}
}

// ConfirmationMatches validates that a confirmation input equals the value of
// the field it confirms.
func ConfirmationMatches(field, value, original string) Rule {
	return Rule{
		Check: func() bool {
			return value == original
		},
		Error: FieldError{
			Field:   field,
			Message: "passwords must match",
		},
	}
}
