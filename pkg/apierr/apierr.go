package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// fallbackMessage is used when a failure carries no usable message at all.
const fallbackMessage = "An unexpected error occurred"

// Error is the structured failure returned by the API: the HTTP status, the
// summary message from the response body, and per-field validation messages
// when the status is 422.
type Error struct {
	Status  int                 `json:"-"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// Normalized is the uniform representation of any failure. Message is never
// empty; FieldErrors is non-empty only when the originating failure carried
// structured per-field errors.
type Normalized struct {
	Message     string
	FieldErrors map[string][]string
}

// HasFieldErrors reports whether per-field messages are present.
func (n Normalized) HasFieldErrors() bool {
	return len(n.FieldErrors) > 0
}

// FieldError returns the first message for a field, or "" when clean.
func (n Normalized) FieldError(field string) string {
	if msgs := n.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Normalize converts any failure value into a Normalized. Precedence:
// structured API errors with per-field messages, then API errors with a
// message only, then plain Go errors, then the generic fallback.
func Normalize(err error) Normalized {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallbackMessage
		}
		if len(apiErr.Fields) > 0 {
			return Normalized{Message: message, FieldErrors: apiErr.Fields}
		}
		return Normalized{Message: message, FieldErrors: map[string][]string{}}
	}

	if err != nil && err.Error() != "" {
		return Normalized{Message: err.Error(), FieldErrors: map[string][]string{}}
	}

	return Normalized{Message: fallbackMessage, FieldErrors: map[string][]string{}}
}

// IsValidation reports whether the failure is a validation rejection (422).
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity
}

// IsAuth reports whether the failure is an authentication rejection (401).
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// FlattenFieldErrors joins every field message into a single line for
// contexts that cannot render per-field output. Fields are visited in sorted
// order so the output is stable.
func FlattenFieldErrors(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for field := range fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	var messages []string
	for _, field := range keys {
		messages = append(messages, fields[field]...)
	}
	return strings.Join(messages, ", ")
}
