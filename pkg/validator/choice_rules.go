package validator

import (
	"fmt"
	"strings"
)

// OneOf validates that a value belongs to a fixed set of allowed values.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be one of: %v", field, allowed),
		},
	}
}

// OneOfString is OneOf for string inputs with a readable message.
func OneOfString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
		},
	}
}
