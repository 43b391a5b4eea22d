package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/handler"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Parallel()
	t.Run("empty error", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		assert.Equal(t, "Validation failed", err.Error())
		assert.True(t, err.IsEmpty())
	})

	t.Run("single field single error", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("email", "invalid format")

		assert.Equal(t, "validation error: email: invalid format", err.Error())
		assert.False(t, err.IsEmpty())
		assert.True(t, err.Has("email"))
		assert.False(t, err.Has("name"))
		assert.Equal(t, "invalid format", err.Get("email"))
	})

	t.Run("multiple fields", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("email", "invalid format")
		err.Add("age", "must be positive")

		// Error message should contain both fields
		errMsg := err.Error()
		assert.Contains(t, errMsg, "validation error:")
		assert.Contains(t, errMsg, "email: invalid format")
		assert.Contains(t, errMsg, "age: must be positive")
	})

	t.Run("multiple errors for same field", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("email", "invalid format")
		err.Add("email", "already exists")

		// Error() shows only first error
		assert.Contains(t, err.Error(), "email: invalid format")

		// But all errors are stored
		assert.Len(t, err["email"], 2)
		assert.Equal(t, "invalid format", err["email"][0])
		assert.Equal(t, "already exists", err["email"][1])
	})
}

func TestValidationErrorFrom(t *testing.T) {
	t.Parallel()

	ve := handler.ValidationErrorFrom(validator.ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Please enter a valid email address"},
		{Field: "name", Message: "second"},
	})

	assert.Equal(t, []string{"Name is required", "second"}, ve["name"])
	assert.Equal(t, "Please enter a valid email address", ve.Get("email"))
	assert.True(t, handler.ValidationErrorFrom(nil).IsEmpty())
}
