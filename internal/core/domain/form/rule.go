package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule inspects a field value, with access to every other field, and returns
// zero or more error messages. An empty result means the value passes.
type Rule func(value string, values Values) []string

type EmailChecker func(value string) bool

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func defaultEmailChecker(value string) bool {
	return emailRegex.MatchString(value)
}

// Chain is the ordered rule list of one field. When required is set a blank
// value yields only that message and the remaining rules are skipped.
type Chain struct {
	required string
	rules    []Rule
}

func NewChain(required string, rules ...Rule) Chain {
	return Chain{required: required, rules: rules}
}

func (c Chain) Evaluate(value string, values Values) []string {
	if c.required != "" && strings.TrimSpace(value) == "" {
		return []string{c.required}
	}

	var messages []string
	for _, rule := range c.rules {
		messages = append(messages, rule(value, values)...)
	}
	return messages
}

func (c Chain) Required() bool {
	return c.required != ""
}

func (c Chain) Len() int {
	return len(c.rules)
}

func Check(ok func(value string) bool, message string) Rule {
	return func(value string, _ Values) []string {
		if ok(value) {
			return nil
		}
		return []string{message}
	}
}

func EmailFormat(isEmail EmailChecker, message string) Rule {
	if isEmail == nil {
		isEmail = defaultEmailChecker
	}
	return Check(isEmail, message)
}

func MatchesPattern(pattern *regexp.Regexp, message string) Rule {
	return Check(pattern.MatchString, message)
}

// MinLength counts characters, not bytes.
func MinLength(n int, message string) Rule {
	return Check(func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}, message)
}

func EqualsField(other Field, message string) Rule {
	mustValid(other)
	return func(value string, values Values) []string {
		if value == values.Get(other) {
			return nil
		}
		return []string{message}
	}
}

func minLengthMessage(n int) string {
	return fmt.Sprintf("minimum %d characters", n)
}
