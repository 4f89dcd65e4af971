package form

import (
	"regexp"
)

const (
	DefaultPasswordMinLength = 6
	DefaultPhonePattern      = `^(809|829|849)\d{7}$`
)

const (
	MsgNameRequired     = "name is required"
	MsgEmailRequired    = "email is required"
	MsgEmailInvalid     = "invalid email"
	MsgPhoneRequired    = "phone is required"
	MsgPhoneFormat      = "format: 8095551234"
	MsgPasswordRequired = "password is required"
	MsgConfirmRequired  = "please confirm the password"
	MsgPasswordMismatch = "passwords do not match"
)

// RuleSet maps each field to its chain and to the fields that must be
// revalidated whenever it changes. It is immutable once built and may be
// shared between models.
type RuleSet struct {
	chains     [fieldCount]Chain
	dependents [fieldCount][]Field
}

func (rs *RuleSet) Chain(f Field) Chain {
	mustValid(f)
	return rs.chains[f]
}

func (rs *RuleSet) Dependents(f Field) []Field {
	mustValid(f)
	return rs.dependents[f]
}

type RuleSetBuilder struct {
	set RuleSet
}

func NewRuleSetBuilder() *RuleSetBuilder {
	return &RuleSetBuilder{}
}

func (b *RuleSetBuilder) Field(f Field, chain Chain) *RuleSetBuilder {
	mustValid(f)
	b.set.chains[f] = chain
	return b
}

// Revalidate marks dependent to be validated again after every change of f.
func (b *RuleSetBuilder) Revalidate(f Field, dependent Field) *RuleSetBuilder {
	mustValid(f)
	mustValid(dependent)
	b.set.dependents[f] = append(b.set.dependents[f], dependent)
	return b
}

func (b *RuleSetBuilder) Build() *RuleSet {
	set := b.set
	for i := range set.dependents {
		set.dependents[i] = append([]Field(nil), set.dependents[i]...)
	}
	return &set
}

type registrationOptions struct {
	passwordMinLength int
	phonePattern      *regexp.Regexp
	phoneMessage      string
	isEmail           EmailChecker
}

type Option func(*registrationOptions)

func WithPasswordMinLength(n int) Option {
	return func(o *registrationOptions) {
		if n > 0 {
			o.passwordMinLength = n
		}
	}
}

func WithPhonePattern(pattern *regexp.Regexp) Option {
	return func(o *registrationOptions) {
		if pattern != nil {
			o.phonePattern = pattern
		}
	}
}

// WithPhoneMessage replaces the phone format message. Set it whenever the
// pattern changes so the example it shows stays accurate.
func WithPhoneMessage(message string) Option {
	return func(o *registrationOptions) {
		if message != "" {
			o.phoneMessage = message
		}
	}
}

func WithEmailChecker(isEmail EmailChecker) Option {
	return func(o *registrationOptions) {
		if isEmail != nil {
			o.isEmail = isEmail
		}
	}
}

var defaultPhonePattern = regexp.MustCompile(DefaultPhonePattern)

// RegistrationRules builds the rule set of the user-registration form.
func RegistrationRules(opts ...Option) *RuleSet {
	o := registrationOptions{
		passwordMinLength: DefaultPasswordMinLength,
		phonePattern:      defaultPhonePattern,
		phoneMessage:      MsgPhoneFormat,
		isEmail:           defaultEmailChecker,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return NewRuleSetBuilder().
		Field(Name, NewChain(MsgNameRequired)).
		Field(Email, NewChain(MsgEmailRequired, EmailFormat(o.isEmail, MsgEmailInvalid))).
		Field(Phone, NewChain(MsgPhoneRequired, MatchesPattern(o.phonePattern, o.phoneMessage))).
		Field(Password, NewChain(MsgPasswordRequired, MinLength(o.passwordMinLength, minLengthMessage(o.passwordMinLength)))).
		Field(ConfirmPassword, NewChain(MsgConfirmRequired, EqualsField(Password, MsgPasswordMismatch))).
		Revalidate(Password, ConfirmPassword).
		Build()
}
