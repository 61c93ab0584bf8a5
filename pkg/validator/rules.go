package validator

import (
	"fmt"
	"regexp"
)

// Check names one of the built-in checks a RuleSet can carry.
type Check string

const (
	CheckRequired  Check = "required"
	CheckMinLength Check = "minLength"
	CheckMaxLength Check = "maxLength"
	CheckPattern   Check = "pattern"
)

// Checks lists the built-in checks in evaluation order.
var Checks = []Check{CheckRequired, CheckMinLength, CheckMaxLength, CheckPattern}

// Valid reports whether c is one of the built-in checks.
func (c Check) Valid() bool {
	switch c {
	case CheckRequired, CheckMinLength, CheckMaxLength, CheckPattern:
		return true
	}
	return false
}

// Default messages used when a RuleSet carries no custom message for a check.
const (
	DefaultRequiredMessage  = "field is required"
	DefaultMinLengthMessage = "must be at least %d characters long"
	DefaultMaxLengthMessage = "must be at most %d characters long"
	DefaultPatternMessage   = "has an invalid format"
)

// RuleSet describes the constraints of a single field.
// A nil MinLength, MaxLength or Pattern means the constraint is not set.
type RuleSet struct {
	Required  bool
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Messages  map[Check]string
}

// Message resolves the message reported when check fails: the custom message if
// one is set and non-empty, the built-in default otherwise.
func (rs RuleSet) Message(check Check) string {
	if msg, ok := rs.Messages[check]; ok && msg != "" {
		return msg
	}

	switch check {
	case CheckRequired:
		return DefaultRequiredMessage
	case CheckMinLength:
		return fmt.Sprintf(DefaultMinLengthMessage, deref(rs.MinLength))
	case CheckMaxLength:
		return fmt.Sprintf(DefaultMaxLengthMessage, deref(rs.MaxLength))
	case CheckPattern:
		return DefaultPatternMessage
	}
	return string(check)
}

// IsZero reports whether the rule set carries no constraints at all.
func (rs RuleSet) IsZero() bool {
	return !rs.Required && rs.MinLength == nil && rs.MaxLength == nil && rs.Pattern == nil
}

// RuleOption configures a RuleSet built with Rules.
type RuleOption func(*RuleSet)

// Rules builds a RuleSet from options.
//
//	rules := validator.Rules(
//	    validator.Required(),
//	    validator.MinLength(3),
//	    validator.Message(validator.CheckRequired, "Name required"),
//	)
func Rules(opts ...RuleOption) RuleSet {
	var rs RuleSet
	for _, opt := range opts {
		opt(&rs)
	}
	return rs
}

func Required() RuleOption {
	return func(rs *RuleSet) { rs.Required = true }
}

// MinLength sets the minimum length. Negative values panic.
func MinLength(n int) RuleOption {
	if n < 0 {
		panic(fmt.Sprintf("MinLength: negative length %d", n))
	}
	return func(rs *RuleSet) { rs.MinLength = &n }
}

// MaxLength sets the maximum length. Negative values panic.
func MaxLength(n int) RuleOption {
	if n < 0 {
		panic(fmt.Sprintf("MaxLength: negative length %d", n))
	}
	return func(rs *RuleSet) { rs.MaxLength = &n }
}

// Pattern sets a compiled pattern the value must match. A nil re clears it.
func Pattern(re *regexp.Regexp) RuleOption {
	return func(rs *RuleSet) { rs.Pattern = re }
}

// MatchString compiles expr and sets it as the pattern. Panics on an invalid
// expression, like regexp.MustCompile.
func MatchString(expr string) RuleOption {
	re := regexp.MustCompile(expr)
	return Pattern(re)
}

// Message sets a custom message for check.
func Message(check Check, msg string) RuleOption {
	return func(rs *RuleSet) {
		if rs.Messages == nil {
			rs.Messages = make(map[Check]string, len(Checks))
		}
		rs.Messages[check] = msg
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
