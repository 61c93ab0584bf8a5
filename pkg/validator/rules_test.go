package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestRules(t *testing.T) {
	t.Parallel()

	t.Run("builds a rule set from options", func(t *testing.T) {
		re := regexp.MustCompile(`^a`)
		rs := validator.Rules(
			validator.Required(),
			validator.MinLength(1),
			validator.MaxLength(9),
			validator.Pattern(re),
			validator.Message(validator.CheckPattern, "starts with a"),
		)

		assert.True(t, rs.Required)
		require.NotNil(t, rs.MinLength)
		require.NotNil(t, rs.MaxLength)
		assert.Equal(t, 1, *rs.MinLength)
		assert.Equal(t, 9, *rs.MaxLength)
		assert.Same(t, re, rs.Pattern)
		assert.Equal(t, "starts with a", rs.Messages[validator.CheckPattern])
		assert.False(t, rs.IsZero())
	})

	t.Run("empty options produce a zero rule set", func(t *testing.T) {
		assert.True(t, validator.Rules().IsZero())
	})

	t.Run("messages alone do not make a constraint", func(t *testing.T) {
		assert.True(t, validator.Rules(validator.Message(validator.CheckRequired, "x")).IsZero())
	})

	t.Run("negative lengths panic", func(t *testing.T) {
		assert.Panics(t, func() { validator.MinLength(-1) })
		assert.Panics(t, func() { validator.MaxLength(-1) })
	})

	t.Run("invalid expression panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.MatchString(`(`) })
	})
}

func TestRuleSet_Message(t *testing.T) {
	t.Parallel()

	t.Run("defaults embed limits", func(t *testing.T) {
		rs := validator.Rules(validator.MinLength(2), validator.MaxLength(8))
		assert.Equal(t, "field is required", rs.Message(validator.CheckRequired))
		assert.Equal(t, "must be at least 2 characters long", rs.Message(validator.CheckMinLength))
		assert.Equal(t, "must be at most 8 characters long", rs.Message(validator.CheckMaxLength))
		assert.Equal(t, "has an invalid format", rs.Message(validator.CheckPattern))
	})

	t.Run("custom messages win", func(t *testing.T) {
		rs := validator.Rules(validator.Message(validator.CheckMaxLength, "Too long"))
		assert.Equal(t, "Too long", rs.Message(validator.CheckMaxLength))
	})

	t.Run("unknown check falls back to its name", func(t *testing.T) {
		assert.Equal(t, "email", validator.RuleSet{}.Message(validator.Check("email")))
	})
}

func TestCheck_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range validator.Checks {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, validator.Check("min_length").Valid())
	assert.False(t, validator.Check("").Valid())
}
