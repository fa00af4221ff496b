package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/ledgerbook-go/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Required("name", "Groceries")))
		assert.Error(t, validator.Apply(validator.Required("name", "")))
		assert.Error(t, validator.Apply(validator.Required("name", "   ")))
	})

	t.Run("length bounds", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(
			validator.MinLen("name", "ab", 2),
			validator.MaxLen("name", "ab", 100),
		))
		assert.Error(t, validator.Apply(validator.MinLen("name", "a", 2)))
		assert.Error(t, validator.Apply(validator.MaxLen("name", "abc", 2)))
	})

	t.Run("confirmation", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(
			validator.ConfirmationMatches("password_confirmation", "Secret12", "Secret12"),
		))

		err := validator.Apply(
			validator.ConfirmationMatches("password_confirmation", "Secret12", "Secret13"),
		)
		require.Error(t, err)
		assert.Equal(t, "passwords must match",
			validator.ExtractFieldErrors(err).First("password_confirmation"))
	})
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	t.Run("email", func(t *testing.T) {
		t.Parallel()
		valid := []string{"user@example.com", "first.last@sub.example.org"}
		for _, v := range valid {
			assert.NoError(t, validator.Apply(validator.ValidEmail("email", v)), v)
		}

		invalid := []string{"", "plain", "user@", "@example.com", "user@localhost", "user@.com"}
		for _, v := range invalid {
			assert.Error(t, validator.Apply(validator.ValidEmail("email", v)), v)
		}
	})

	t.Run("optional email", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.OptionalEmail("email", "")))
		assert.NoError(t, validator.Apply(validator.OptionalEmail("email", "user@example.com")))
		assert.Error(t, validator.Apply(validator.OptionalEmail("email", "nope")))
	})

	t.Run("phone", func(t *testing.T) {
		t.Parallel()
		valid := []string{"", "+14155552671", "(415) 555-2671", "0612-345-678"}
		for _, v := range valid {
			assert.NoError(t, validator.Apply(validator.ValidPhone("phone", v)), v)
		}
		assert.Error(t, validator.Apply(validator.ValidPhone("phone", "not-a-phone")))
	})

	t.Run("url", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.ValidURL("website", "https://example.com/path")))
		assert.Error(t, validator.Apply(validator.ValidURL("website", "example.com")))
		assert.Error(t, validator.Apply(validator.ValidURL("website", "")))
	})
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.MinLenPassword("password", "Secret12", 8)))
		assert.Error(t, validator.Apply(validator.MinLenPassword("password", "Sec1", 8)))
	})

	t.Run("strength", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.StrongPassword("password", "Secret12")))

		weak := []string{"secret12", "SECRET12", "Secretly", "12345678"}
		for _, v := range weak {
			assert.Error(t, validator.Apply(validator.StrongPassword("password", v)), v)
		}
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MinNum("order", 3, 0)))
	assert.Error(t, validator.Apply(validator.MinNum("order", -1, 0)))
	assert.NoError(t, validator.Apply(validator.MaxNum("order", 5, 10)))
	assert.Error(t, validator.Apply(validator.MaxNum("order", 11, 10)))
	assert.NoError(t, validator.Apply(validator.RequiredID("account_id", int64(7))))
	assert.Error(t, validator.Apply(validator.RequiredID("account_id", int64(0))))
}

func TestFinancialRules(t *testing.T) {
	t.Parallel()

	t.Run("parse optional amount", func(t *testing.T) {
		t.Parallel()

		value, present, err := validator.ParseOptionalAmount("")
		require.NoError(t, err)
		assert.False(t, present)
		assert.Zero(t, value)

		value, present, err = validator.ParseOptionalAmount("  12.50 ")
		require.NoError(t, err)
		assert.True(t, present)
		assert.InDelta(t, 12.5, value, 0.0001)

		_, present, err = validator.ParseOptionalAmount("abc")
		assert.True(t, present)
		assert.Error(t, err)
	})

	t.Run("numeric string distinguishes absent from malformed", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.NumericString("credit_limit", "")))
		assert.NoError(t, validator.Apply(validator.NumericString("credit_limit", "100")))
		assert.Error(t, validator.Apply(validator.NumericString("credit_limit", "lots")))
	})

	t.Run("required amount", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.RequiredAmount("amount", "10")))
		assert.Error(t, validator.Apply(validator.RequiredAmount("amount", "")))
		assert.Error(t, validator.Apply(validator.RequiredAmount("amount", "ten")))
	})

	t.Run("amount signs", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.NonNegativeAmount("amount", 0.0)))
		assert.Error(t, validator.Apply(validator.NonNegativeAmount("amount", -0.01)))
		assert.NoError(t, validator.Apply(validator.PositiveAmount("amount", 0.01)))
		assert.Error(t, validator.Apply(validator.PositiveAmount("amount", 0.0)))
	})
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.ValidDate("start_date", "2024-02-01")))
		assert.Error(t, validator.Apply(validator.ValidDate("start_date", "02/01/2024")))
		assert.Error(t, validator.Apply(validator.ValidDate("start_date", "")))
	})

	t.Run("optional date", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.OptionalDate("end_date", "")))
		assert.NoError(t, validator.Apply(validator.OptionalDate("end_date", "2024-02-01")))
		assert.Error(t, validator.Apply(validator.OptionalDate("end_date", "soon")))
	})

	t.Run("on or after", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(
			validator.DateOnOrAfter("end_date", "2024-02-01", "2024-02-01", "start_date"),
		))
		assert.NoError(t, validator.Apply(
			validator.DateOnOrAfter("end_date", "2024-03-01", "2024-02-01", "start_date"),
		))
		assert.Error(t, validator.Apply(
			validator.DateOnOrAfter("end_date", "2024-01-15", "2024-02-01", "start_date"),
		))
		// Unparseable inputs defer to the type-level rules.
		assert.NoError(t, validator.Apply(
			validator.DateOnOrAfter("end_date", "soon", "2024-02-01", "start_date"),
		))
	})
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(
		validator.OneOfString("type", "asset", []string{"asset", "liability"}),
	))

	err := validator.Apply(
		validator.OneOfString("type", "equity", []string{"asset", "liability"}),
	)
	require.Error(t, err)
	assert.Equal(t, "type must be one of: asset, liability",
		validator.ExtractFieldErrors(err).First("type"))

	assert.NoError(t, validator.Apply(validator.OneOf("period", 30, []int{7, 30, 365})))
	assert.Error(t, validator.Apply(validator.OneOf("period", 14, []int{7, 30, 365})))
}
