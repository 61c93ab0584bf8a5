package validator_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestValidateField_Examples(t *testing.T) {
	t.Parallel()

	t.Run("empty required value reports custom message", func(t *testing.T) {
		rules := validator.Rules(
			validator.Required(),
			validator.Message(validator.CheckRequired, "Required!"),
		)
		assert.Equal(t, validator.FieldErrors{"Required!"}, validator.ValidateField(validator.Text(""), rules))
	})

	t.Run("short value reports minLength message", func(t *testing.T) {
		rules := validator.Rules(
			validator.MinLength(3),
			validator.Message(validator.CheckMinLength, "Too short"),
		)
		assert.Equal(t, validator.FieldErrors{"Too short"}, validator.ValidateField(validator.Text("ab"), rules))
	})

	t.Run("collects maxLength and pattern messages in order", func(t *testing.T) {
		rules := validator.Rules(
			validator.MaxLength(4),
			validator.MatchString(`^[a-c]+$`),
			validator.Message(validator.CheckMaxLength, "Too long"),
			validator.Message(validator.CheckPattern, "Bad format"),
		)
		assert.Equal(t, validator.FieldErrors{"Too long", "Bad format"}, validator.ValidateField(validator.Text("abcdef"), rules))
	})

	t.Run("valid value returns nil", func(t *testing.T) {
		rules := validator.Rules(
			validator.Required(),
			validator.MinLength(1),
			validator.MaxLength(5),
			validator.MatchString(`^[a-c]+$`),
		)
		assert.Nil(t, validator.ValidateField(validator.Text("abc"), rules))
	})
}

func TestValidateField_NoConstraints(t *testing.T) {
	t.Parallel()

	values := []validator.Value{
		validator.Text(""),
		validator.Text("anything"),
		validator.Absent(),
		validator.Int(0),
		validator.Bool(false),
		validator.List(nil),
		nil,
	}
	for _, v := range values {
		assert.Nil(t, validator.ValidateField(v, validator.RuleSet{}), "value %#v", v)
	}
}

func TestValidateField_Required(t *testing.T) {
	t.Parallel()

	rules := validator.Rules(validator.Required())

	t.Run("empty values fail", func(t *testing.T) {
		empties := []validator.Value{
			validator.Text(""),
			validator.Absent(),
			validator.Int(0),
			validator.Float(0),
			validator.Bool(false),
			validator.List{},
			nil,
		}
		for _, v := range empties {
			assert.Equal(t, validator.FieldErrors{validator.DefaultRequiredMessage}, validator.ValidateField(v, rules), "value %#v", v)
		}
	})

	t.Run("non-empty values pass", func(t *testing.T) {
		values := []validator.Value{
			validator.Text(" "),
			validator.Text("0"),
			validator.Int(-1),
			validator.Float(0.5),
			validator.Bool(true),
			validator.List{""},
		}
		for _, v := range values {
			assert.Nil(t, validator.ValidateField(v, rules), "value %#v", v)
		}
	})
}

func TestValidateField_Length(t *testing.T) {
	t.Parallel()

	t.Run("minLength boundary", func(t *testing.T) {
		rules := validator.Rules(validator.MinLength(3))
		for n := 0; n <= 6; n++ {
			got := validator.ValidateField(validator.Text(strings.Repeat("x", n)), rules)
			if n < 3 {
				assert.Equal(t, validator.FieldErrors{"must be at least 3 characters long"}, got, "length %d", n)
			} else {
				assert.Nil(t, got, "length %d", n)
			}
		}
	})

	t.Run("maxLength boundary", func(t *testing.T) {
		rules := validator.Rules(validator.MaxLength(3))
		for n := 0; n <= 6; n++ {
			got := validator.ValidateField(validator.Text(strings.Repeat("x", n)), rules)
			if n > 3 {
				assert.Equal(t, validator.FieldErrors{"must be at most 3 characters long"}, got, "length %d", n)
			} else {
				assert.Nil(t, got, "length %d", n)
			}
		}
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		rules := validator.Rules(validator.MaxLength(4))
		assert.Nil(t, validator.ValidateField(validator.Text("héll"), rules))
		assert.Nil(t, validator.ValidateField(validator.Text("日本語"), rules))
	})

	t.Run("decomposed characters count once", func(t *testing.T) {
		rules := validator.Rules(validator.MaxLength(1))
		assert.Nil(t, validator.ValidateField(validator.Text("e\u0301"), rules))
	})

	t.Run("zero minLength never fails", func(t *testing.T) {
		rules := validator.Rules(validator.MinLength(0))
		assert.Nil(t, validator.ValidateField(validator.Text(""), rules))
	})

	t.Run("zero maxLength rejects any content", func(t *testing.T) {
		rules := validator.Rules(validator.MaxLength(0))
		assert.Nil(t, validator.ValidateField(validator.Text(""), rules))
		assert.Equal(t, validator.FieldErrors{"must be at most 0 characters long"}, validator.ValidateField(validator.Text("a"), rules))
	})

	t.Run("unsized values have length zero", func(t *testing.T) {
		rules := validator.Rules(validator.MinLength(1), validator.MaxLength(1))
		for _, v := range []validator.Value{validator.Absent(), validator.Int(12345), validator.Bool(true), nil} {
			assert.Equal(t, validator.FieldErrors{"must be at least 1 characters long"}, validator.ValidateField(v, rules), "value %#v", v)
		}
	})

	t.Run("list length is the element count", func(t *testing.T) {
		rules := validator.Rules(validator.MinLength(2), validator.MaxLength(3))
		assert.NotNil(t, validator.ValidateField(validator.List{"a"}, rules))
		assert.Nil(t, validator.ValidateField(validator.List{"a", "b"}, rules))
		assert.NotNil(t, validator.ValidateField(validator.List{"a", "b", "c", "d"}, rules))
	})
}

func TestValidateField_Pattern(t *testing.T) {
	t.Parallel()

	rules := validator.Rules(validator.Pattern(regexp.MustCompile(`^\d{3}$`)))

	t.Run("matching values pass", func(t *testing.T) {
		assert.Nil(t, validator.ValidateField(validator.Text("123"), rules))
		assert.Nil(t, validator.ValidateField(validator.Int(456), rules))
	})

	t.Run("non-matching values fail", func(t *testing.T) {
		for _, v := range []validator.Value{validator.Text("12"), validator.Text("abc"), validator.Int(1234), validator.Absent()} {
			assert.Equal(t, validator.FieldErrors{validator.DefaultPatternMessage}, validator.ValidateField(v, rules), "value %#v", v)
		}
	})

	t.Run("unanchored pattern matches substrings", func(t *testing.T) {
		rs := validator.Rules(validator.MatchString(`@`))
		assert.Nil(t, validator.ValidateField(validator.Text("user@example.com"), rs))
	})
}

func TestValidateField_AllChecksInOrder(t *testing.T) {
	t.Parallel()

	rules := validator.Rules(
		validator.Required(),
		validator.MinLength(2),
		validator.MaxLength(5),
		validator.MatchString(`^x+$`),
		validator.Message(validator.CheckRequired, "r"),
		validator.Message(validator.CheckMinLength, "min"),
		validator.Message(validator.CheckPattern, "p"),
	)

	t.Run("absent value fails required, minLength and pattern", func(t *testing.T) {
		assert.Equal(t, validator.FieldErrors{"r", "min", "p"}, validator.ValidateField(validator.Absent(), rules))
	})

	t.Run("long value fails maxLength and pattern", func(t *testing.T) {
		assert.Equal(t, validator.FieldErrors{"must be at most 5 characters long", "p"}, validator.ValidateField(validator.Text("abcdefg"), rules))
	})
}

func TestValidateField_MessageFallback(t *testing.T) {
	t.Parallel()

	t.Run("empty custom message falls back to default", func(t *testing.T) {
		rules := validator.Rules(validator.Required(), validator.Message(validator.CheckRequired, ""))
		assert.Equal(t, validator.FieldErrors{"field is required"}, validator.ValidateField(validator.Text(""), rules))
	})

	t.Run("never reports empty strings", func(t *testing.T) {
		rules := validator.RuleSet{
			Required:  true,
			MinLength: intPtr(3),
			Pattern:   regexp.MustCompile(`z`),
			Messages:  map[validator.Check]string{},
		}
		got := validator.ValidateField(validator.Text(""), rules)
		require.Len(t, got, 3)
		for _, msg := range got {
			assert.NotEmpty(t, msg)
		}
	})
}

func TestValidateField_Idempotent(t *testing.T) {
	t.Parallel()

	rules := validator.Rules(validator.Required(), validator.MinLength(10), validator.MatchString(`^a`))
	first := validator.ValidateField(validator.Text("b"), rules)
	second := validator.ValidateField(validator.Text("b"), rules)
	assert.Equal(t, first, second)
}

func TestCheckField(t *testing.T) {
	t.Parallel()

	t.Run("returns structured errors with translation metadata", func(t *testing.T) {
		rules := validator.Rules(validator.Required(), validator.MinLength(4), validator.MatchString(`^\d+$`))
		errs := validator.CheckField("pin", validator.Text(""), rules)

		require.Len(t, errs, 3)
		assert.Equal(t, validator.CheckRequired, errs[0].Rule)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "pin"}, errs[0].TranslationValues)

		assert.Equal(t, validator.CheckMinLength, errs[1].Rule)
		assert.Equal(t, "validation.min_length", errs[1].TranslationKey)
		assert.Equal(t, map[string]any{"field": "pin", "min": 4}, errs[1].TranslationValues)

		assert.Equal(t, validator.CheckPattern, errs[2].Rule)
		assert.Equal(t, "validation.regex_pattern", errs[2].TranslationKey)
		assert.Equal(t, `^\d+$`, errs[2].TranslationValues["pattern"])

		assert.True(t, errs.Has("pin"))
		assert.Equal(t, []string{"pin"}, errs.Fields())
		assert.Equal(t, []string{"field is required", "must be at least 4 characters long", "has an invalid format"}, errs.Get("pin"))
		assert.Nil(t, errs.Get("other"))
	})

	t.Run("collects errors across fields in insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		for _, e := range validator.CheckField("name", validator.Absent(), validator.Rules(validator.Required())) {
			errs.Add(e)
		}
		for _, e := range validator.CheckField("pin", validator.Text("12"), validator.Rules(validator.MinLength(4))) {
			errs.Add(e)
		}

		assert.Equal(t, []string{"name", "pin"}, errs.Fields())
		assert.Equal(t, []string{"field is required"}, errs.Get("name"))
		assert.Equal(t, []string{"must be at least 4 characters long"}, errs.Get("pin"))
		assert.Equal(t, "validation failed: name: field is required; pin: must be at least 4 characters long", errs.Error())
	})

	t.Run("returns nil when value passes", func(t *testing.T) {
		errs := validator.CheckField("pin", validator.Text("1234"), validator.Rules(validator.MaxLength(4)))
		assert.Nil(t, errs)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("structured errors satisfy the error interface", func(t *testing.T) {
		errs := validator.CheckField("name", validator.Absent(), validator.Rules(validator.Required()))
		var err error = errs
		assert.Equal(t, "validation failed: name: field is required", err.Error())
		assert.True(t, validator.IsValidationError(fmt.Errorf("wrapped: %w", err)))
	})
}

func intPtr(n int) *int { return &n }
