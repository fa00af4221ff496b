package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/ledgerbook-go/pkg/validator"
)

func failing(field, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.FieldError{Field: field, Message: message},
	}
}

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.FieldError{Field: field, Message: "unused"},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(passing("a"), passing("b")))
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			failing("name", "first"),
			failing("name", "second"),
			failing("email", "third"),
		)
		require.Error(t, err)

		fieldErrs := validator.ExtractFieldErrors(err)
		require.Len(t, fieldErrs, 3)
		assert.Equal(t, []string{"first", "second"}, fieldErrs.Get("name"))
	})
}

func TestApplyGrouped(t *testing.T) {
	t.Parallel()

	t.Run("first violation per field wins", func(t *testing.T) {
		t.Parallel()
		err := validator.ApplyGrouped(
			failing("name", "first"),
			failing("name", "second"),
			failing("email", "invalid"),
		)
		require.Error(t, err)

		fieldErrs := validator.ExtractFieldErrors(err)
		require.Len(t, fieldErrs, 2)
		assert.Equal(t, "first", fieldErrs.First("name"))
		assert.Equal(t, "invalid", fieldErrs.First("email"))
	})

	t.Run("later rules on a failed field are not evaluated", func(t *testing.T) {
		t.Parallel()
		evaluated := false
		probe := validator.Rule{
			Check: func() bool {
				evaluated = true
				return true
			},
			Error: validator.FieldError{Field: "amount", Message: "unused"},
		}

		err := validator.ApplyGrouped(failing("amount", "must be a number"), probe)
		require.Error(t, err)
		assert.False(t, evaluated)
	})

	t.Run("every field evaluated independently", func(t *testing.T) {
		t.Parallel()
		err := validator.ApplyGrouped(
			failing("a", "bad a"),
			passing("b"),
			failing("c", "bad c"),
		)
		require.Error(t, err)

		fieldErrs := validator.ExtractFieldErrors(err)
		assert.ElementsMatch(t, []string{"a", "c"}, fieldErrs.Fields())
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	t.Run("inert when condition is false", func(t *testing.T) {
		t.Parallel()
		rules := validator.When(false, failing("credit_limit", "must be positive"))
		assert.Empty(t, rules)
		assert.NoError(t, validator.ApplyGrouped(rules...))
	})

	t.Run("active when condition holds", func(t *testing.T) {
		t.Parallel()
		rules := validator.When(true, failing("credit_limit", "must be positive"))
		err := validator.ApplyGrouped(rules...)
		require.Error(t, err)
		assert.True(t, validator.ExtractFieldErrors(err).Has("credit_limit"))
	})
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("error message", func(t *testing.T) {
		t.Parallel()
		fe := validator.FieldErrors{
			{Field: "email", Message: "please enter a valid email address"},
		}
		assert.Equal(t, "validation failed: email: please enter a valid email address", fe.Error())
		assert.Equal(t, "validation failed", validator.FieldErrors{}.Error())
	})

	t.Run("map bridge", func(t *testing.T) {
		t.Parallel()
		fe := validator.FieldErrors{
			{Field: "name", Message: "name is required"},
			{Field: "name", Message: "name must be at least 2 characters"},
			{Field: "email", Message: "invalid"},
		}
		m := fe.Map()
		assert.Equal(t, []string{"name is required", "name must be at least 2 characters"}, m["name"])
		assert.Equal(t, []string{"invalid"}, m["email"])
	})

	t.Run("extraction through wrapping", func(t *testing.T) {
		t.Parallel()
		var err error = validator.FieldErrors{{Field: "name", Message: "required"}}
		wrapped := fmt.Errorf("submit: %w", err)

		assert.True(t, validator.IsFieldErrors(wrapped))
		assert.NotNil(t, validator.ExtractFieldErrors(wrapped))
		assert.False(t, validator.IsFieldErrors(errors.New("other")))
		assert.Nil(t, validator.ExtractFieldErrors(nil))
	})
}
