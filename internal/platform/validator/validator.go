package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	var errs []string
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

type Validator interface {
	// Validate checks a struct against its `validate` tags.
	Validate(s interface{}) error
	// Var checks a single value against a tag expression such as "email".
	Var(value interface{}, tag string) error
}
