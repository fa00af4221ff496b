package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOptionalAmount parses an optional numeric form input. Empty input is
// absent, not an error; a non-empty string that does not parse is reported
// so the caller can raise a type error distinct from any range constraint.
func ParseOptionalAmount(raw string) (value float64, present bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, true, err
	}
	return value, true, nil
}

// NumericString validates that a form input is empty or parses as a number.
func NumericString(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			_, _, err := ParseOptionalAmount(raw)
			return err == nil
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a number", field),
		},
	}
}

// RequiredAmount validates that a numeric form input is present and parses.
func RequiredAmount(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			_, present, err := ParseOptionalAmount(raw)
			return present && err == nil
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s is required and must be a number", field),
		},
	}
}

// NonNegativeAmount validates that a monetary amount is zero or positive.
func NonNegativeAmount[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be positive", field),
		},
	}
}

// PositiveAmount validates that a monetary amount is strictly positive.
func PositiveAmount[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be greater than zero", field),
		},
	}
}
