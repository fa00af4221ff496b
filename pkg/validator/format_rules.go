package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Loose international phone format: optional country code, separators
	// and parentheses between digit groups.
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
)

// ValidEmail validates that a string is a well-formed email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isEmail(value)
		},
		Error: FieldError{
			Field:   field,
			Message: "please enter a valid email address",
		},
	}
}

// OptionalEmail accepts an empty value and otherwise applies the email check.
func OptionalEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) == "" || isEmail(value)
		},
		Error: FieldError{
			Field:   field,
			Message: "please enter a valid email address",
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts bare local domains; require a dotted
	// domain as web forms do.
	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// ValidPhone validates a phone number, accepting empty input so the rule can
// guard optional fields.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) == "" || phoneRegex.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: "invalid phone number",
		},
	}
}

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Error: FieldError{
			Field:   field,
			Message: "please enter a valid URL",
		},
	}
}

// Matches validates a string against an arbitrary pattern.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s has an invalid format", field),
		},
	}
}
