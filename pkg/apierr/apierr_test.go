package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/ledgerbook-go/pkg/apierr"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("structured validation failure", func(t *testing.T) {
		t.Parallel()
		fields := map[string][]string{
			"email":    {"The email field is required."},
			"password": {"The password must be at least 8 characters."},
		}
		err := &apierr.Error{
			Status:  http.StatusUnprocessableEntity,
			Message: "The given data was invalid.",
			Fields:  fields,
		}

		n := apierr.Normalize(err)
		assert.Equal(t, "The given data was invalid.", n.Message)
		assert.Equal(t, fields, n.FieldErrors)
		assert.True(t, n.HasFieldErrors())
		assert.Equal(t, "The email field is required.", n.FieldError("email"))
	})

	t.Run("body with message only", func(t *testing.T) {
		t.Parallel()
		err := &apierr.Error{Status: http.StatusForbidden, Message: "Forbidden."}

		n := apierr.Normalize(err)
		assert.Equal(t, "Forbidden.", n.Message)
		assert.NotNil(t, n.FieldErrors)
		assert.Empty(t, n.FieldErrors)
	})

	t.Run("api error without message falls back", func(t *testing.T) {
		t.Parallel()
		n := apierr.Normalize(&apierr.Error{Status: http.StatusBadGateway})
		assert.Equal(t, "An unexpected error occurred", n.Message)
		assert.Empty(t, n.FieldErrors)
	})

	t.Run("wrapped api error", func(t *testing.T) {
		t.Parallel()
		inner := &apierr.Error{Status: http.StatusNotFound, Message: "Account not found."}
		n := apierr.Normalize(fmt.Errorf("load account: %w", inner))
		assert.Equal(t, "Account not found.", n.Message)
	})

	t.Run("generic error", func(t *testing.T) {
		t.Parallel()
		n := apierr.Normalize(errors.New("dial tcp: connection refused"))
		assert.Equal(t, "dial tcp: connection refused", n.Message)
		assert.Empty(t, n.FieldErrors)
	})

	t.Run("nil failure", func(t *testing.T) {
		t.Parallel()
		n := apierr.Normalize(nil)
		assert.Equal(t, "An unexpected error occurred", n.Message)
		assert.Empty(t, n.FieldErrors)
		assert.False(t, n.HasFieldErrors())
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	validation := &apierr.Error{Status: http.StatusUnprocessableEntity, Message: "invalid"}
	auth := &apierr.Error{Status: http.StatusUnauthorized, Message: "Unauthenticated."}

	assert.True(t, apierr.IsValidation(validation))
	assert.False(t, apierr.IsValidation(auth))
	assert.True(t, apierr.IsAuth(auth))
	assert.False(t, apierr.IsAuth(validation))

	assert.True(t, apierr.IsAuth(fmt.Errorf("call: %w", auth)))
	assert.False(t, apierr.IsAuth(errors.New("network down")))
	assert.False(t, apierr.IsValidation(nil))
}

func TestFlattenFieldErrors(t *testing.T) {
	t.Parallel()

	flat := apierr.FlattenFieldErrors(map[string][]string{
		"b_field": {"second"},
		"a_field": {"first", "also first"},
	})
	assert.Equal(t, "first, also first, second", flat)

	assert.Empty(t, apierr.FlattenFieldErrors(nil))
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "api: Unauthenticated. (status 401)",
		(&apierr.Error{Status: 401, Message: "Unauthenticated."}).Error())
	require.Equal(t, "api: request failed with status 500",
		(&apierr.Error{Status: 500}).Error())
}
