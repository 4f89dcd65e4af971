package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validatorPlatform "registration/internal/platform/validator"
)

type setFieldBody struct {
	Value *string `json:"value" validate:"required,max=8"`
}

func ptr(s string) *string {
	return &s
}

func TestNewPlaygroundAdapter(t *testing.T) {
	v := NewPlaygroundAdapter()

	require.NotNil(t, v)
	assert.Implements(t, (*validatorPlatform.Validator)(nil), v)
}

func TestPlaygroundValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    setFieldBody
		wantMsg string
	}{
		{name: "valid", body: setFieldBody{Value: ptr("Ana")}},
		{name: "empty_value_is_present", body: setFieldBody{Value: ptr("")}},
		{name: "missing_value", body: setFieldBody{}, wantMsg: "This field is required"},
		{name: "too_long", body: setFieldBody{Value: ptr("123456789")}, wantMsg: "This field must be at most 8 characters long"},
	}

	v := NewPlaygroundAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.body)

			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr validatorPlatform.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Errors, 1)
			assert.Equal(t, "value", validationErr.Errors[0].Field)
			assert.Equal(t, tt.wantMsg, validationErr.Errors[0].Message)
		})
	}
}

func TestPlaygroundValidator_Validate_NotAStruct(t *testing.T) {
	err := NewPlaygroundAdapter().Validate("plain string")

	require.Error(t, err)
	var validationErr validatorPlatform.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestPlaygroundValidator_Var(t *testing.T) {
	v := NewPlaygroundAdapter()

	assert.NoError(t, v.Var("a@b.com", "email"))

	var validationErr validatorPlatform.ValidationError
	require.ErrorAs(t, v.Var("not-an-email", "email"), &validationErr)
	assert.Equal(t, "This field must be a valid email address", validationErr.Errors[0].Message)
}

func TestEmailChecker(t *testing.T) {
	isEmail := EmailChecker(NewPlaygroundAdapter())

	tests := map[string]bool{
		"a@b.com":              true,
		"ana.perez@example.do": true,
		"not-an-email":         false,
		"test@":                false,
		"@example.com":         false,
		"two@@example.com":     false,
	}
	for input, want := range tests {
		assert.Equal(t, want, isEmail(input), input)
	}
}
