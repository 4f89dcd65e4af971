package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"registration/internal/core/domain/form"
	validatorPlatform "registration/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	return &playgroundValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	return v.translate(v.validate.Struct(s))
}

func (v *playgroundValidator) Var(value interface{}, tag string) error {
	return v.translate(v.validate.Var(value, tag))
}

func (v *playgroundValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
		for i, fe := range validationErrors {
			outErrors[i] = validatorPlatform.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: getValidationErrorMessage(fe),
			}
		}
		return validatorPlatform.ValidationError{Errors: outErrors}
	}
	return err
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "max":
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}

// EmailChecker adapts v to the form email rule.
func EmailChecker(v validatorPlatform.Validator) form.EmailChecker {
	return func(value string) bool {
		return v.Var(value, "email") == nil
	}
}
