package form

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown field")

type Field int

const (
	Name Field = iota
	Email
	Phone
	Password
	ConfirmPassword

	fieldCount
)

var fieldNames = [fieldCount]string{
	Name:            "name",
	Email:           "email",
	Phone:           "phone",
	Password:        "password",
	ConfirmPassword: "confirmPassword",
}

// Fields returns every field in declaration order.
func Fields() []Field {
	return []Field{Name, Email, Phone, Password, ConfirmPassword}
}

func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	return []byte(fieldNames[f]), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// mustValid panics on fields outside the closed set; passing one is always a caller bug.
func mustValid(f Field) {
	if !f.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownField, int(f)))
	}
}

// Values is a read-only view of every field's current value.
type Values struct {
	values [fieldCount]string
}

func (v Values) Get(f Field) string {
	mustValid(f)
	return v.values[f]
}

// Map returns the values keyed by wire name.
func (v Values) Map() map[string]string {
	out := make(map[string]string, fieldCount)
	for i, val := range v.values {
		out[fieldNames[i]] = val
	}
	return out
}
