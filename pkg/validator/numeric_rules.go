package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %v", field, min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %v", field, max),
		},
	}
}

// RequiredID validates that a numeric identifier is set (non-zero).
func RequiredID[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		},
	}
}
