package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// MinLenPassword validates the minimum password length.
func MinLenPassword(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("password must be at least %d characters", min),
		},
	}
}

// StrongPassword validates that a password carries at least one uppercase
// letter, one lowercase letter and one digit.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value) &&
				lowercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: "password must contain at least one uppercase letter, one lowercase letter, and one number",
		},
	}
}
