package validator

// ValidateField evaluates value against rules.
//
// The checks run in a fixed order (required, minLength, maxLength, pattern) and
// every set check runs regardless of earlier failures, so one call can report up
// to four messages. It returns nil when the value passes.
//
// A nil value is treated as Absent.
func ValidateField(value Value, rules RuleSet) FieldErrors {
	return FieldErrors(CheckField("", value, rules).Messages())
}

// CheckField is ValidateField with structured results: each failure carries the
// field name, the check that failed and a translation key with its parameters.
func CheckField(field string, value Value, rules RuleSet) ValidationErrors {
	if value == nil {
		value = Absent()
	}

	var checks []Rule
	if rules.Required {
		checks = append(checks, requiredRule(field, value, rules))
	}
	if rules.MinLength != nil {
		checks = append(checks, minLengthRule(field, value, rules))
	}
	if rules.MaxLength != nil {
		checks = append(checks, maxLengthRule(field, value, rules))
	}
	if rules.Pattern != nil {
		checks = append(checks, patternRule(field, value, rules))
	}
	return apply(checks...)
}

func requiredRule(field string, value Value, rules RuleSet) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsEmpty()
		},
		Error: ValidationError{
			Field:          field,
			Rule:           CheckRequired,
			Message:        rules.Message(CheckRequired),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func minLengthRule(field string, value Value, rules RuleSet) Rule {
	min := *rules.MinLength
	return Rule{
		Check: func() bool {
			return value.Len() >= min
		},
		Error: ValidationError{
			Field:          field,
			Rule:           CheckMinLength,
			Message:        rules.Message(CheckMinLength),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func maxLengthRule(field string, value Value, rules RuleSet) Rule {
	max := *rules.MaxLength
	return Rule{
		Check: func() bool {
			return value.Len() <= max
		},
		Error: ValidationError{
			Field:          field,
			Rule:           CheckMaxLength,
			Message:        rules.Message(CheckMaxLength),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

func patternRule(field string, value Value, rules RuleSet) Rule {
	re := rules.Pattern
	return Rule{
		Check: func() bool {
			return re.MatchString(value.String())
		},
		Error: ValidationError{
			Field:          field,
			Rule:           CheckPattern,
			Message:        rules.Message(CheckPattern),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}
