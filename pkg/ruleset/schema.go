package ruleset

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// SchemaDefinition is the serialized form of a Schema as it appears in rule
// documents.
type SchemaDefinition struct {
	Name   string            `yaml:"name" json:"name"`
	Fields []FieldDefinition `yaml:"fields" json:"fields"`
}

// FieldDefinition is the serialized form of one field's rules.
type FieldDefinition struct {
	Name      string            `yaml:"name" json:"name"`
	Required  bool              `yaml:"required,omitempty" json:"required,omitempty"`
	MinLength *int              `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int              `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string            `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Messages  map[string]string `yaml:"messages,omitempty" json:"messages,omitempty"`
}

// FieldRules is a compiled field rule set.
type FieldRules struct {
	Name  string
	Rules validator.RuleSet
}

// Schema is a named, ordered list of field rule sets. Schemas are immutable once
// compiled and safe for concurrent use.
type Schema struct {
	Name   string
	Fields []FieldRules

	def SchemaDefinition
}

// Compile checks a definition and turns it into a Schema.
func Compile(def SchemaDefinition) (Schema, error) {
	if def.Name == "" {
		return Schema{}, fmt.Errorf("%w: schema", ErrMissingName)
	}

	schema := Schema{
		Name:   def.Name,
		Fields: make([]FieldRules, 0, len(def.Fields)),
		def:    cloneDefinition(def),
	}
	seen := make(map[string]bool, len(def.Fields))
	for i, fd := range def.Fields {
		if fd.Name == "" {
			return Schema{}, fmt.Errorf("%w: schema %q field #%d", ErrMissingName, def.Name, i)
		}
		if seen[fd.Name] {
			return Schema{}, fmt.Errorf("%w: schema %q field %q", ErrDuplicateField, def.Name, fd.Name)
		}
		seen[fd.Name] = true

		rules, err := fd.compile()
		if err != nil {
			return Schema{}, fmt.Errorf("schema %q field %q: %w", def.Name, fd.Name, err)
		}
		schema.Fields = append(schema.Fields, FieldRules{Name: fd.Name, Rules: rules})
	}
	return schema, nil
}

func (fd FieldDefinition) compile() (validator.RuleSet, error) {
	rules := validator.RuleSet{Required: fd.Required}

	if fd.MinLength != nil {
		if *fd.MinLength < 0 {
			return rules, fmt.Errorf("%w: minLength %d is negative", ErrInvalidLength, *fd.MinLength)
		}
		n := *fd.MinLength
		rules.MinLength = &n
	}
	if fd.MaxLength != nil {
		if *fd.MaxLength < 0 {
			return rules, fmt.Errorf("%w: maxLength %d is negative", ErrInvalidLength, *fd.MaxLength)
		}
		n := *fd.MaxLength
		rules.MaxLength = &n
	}
	if rules.MinLength != nil && rules.MaxLength != nil && *rules.MinLength > *rules.MaxLength {
		return rules, fmt.Errorf("%w: minLength %d exceeds maxLength %d", ErrInvalidLength, *rules.MinLength, *rules.MaxLength)
	}

	if fd.Pattern != "" {
		re, err := regexp.Compile(fd.Pattern)
		if err != nil {
			return rules, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		rules.Pattern = re
	}

	if len(fd.Messages) > 0 {
		rules.Messages = make(map[validator.Check]string, len(fd.Messages))
		for key, msg := range fd.Messages {
			check := validator.Check(key)
			if !check.Valid() {
				return rules, fmt.Errorf("%w: %q", ErrUnknownCheck, key)
			}
			rules.Messages[check] = msg
		}
	}
	return rules, nil
}

// Field returns the rules of the named field.
func (s Schema) Field(name string) (validator.RuleSet, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Rules, true
		}
	}
	return validator.RuleSet{}, false
}

// Form builds a validator.Form in schema order from raw input values. Fields
// missing from input are Absent; input keys the schema does not declare are
// ignored.
func (s Schema) Form(input map[string]any) *validator.Form {
	form := validator.NewForm()
	for _, f := range s.Fields {
		value := validator.Absent()
		if raw, ok := input[f.Name]; ok {
			value = validator.Of(raw)
		}
		form.Add(f.Name, value, f.Rules)
	}
	return form
}

// Validate validates input against the schema. It returns nil when every field
// passes.
func (s Schema) Validate(input map[string]any) *validator.FormErrors {
	return validator.ValidateForm(s.Form(input))
}

// Definition returns the serialized form of the schema.
func (s Schema) Definition() SchemaDefinition {
	return cloneDefinition(s.def)
}

func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.def)
}

func cloneDefinition(def SchemaDefinition) SchemaDefinition {
	out := SchemaDefinition{Name: def.Name, Fields: make([]FieldDefinition, 0, len(def.Fields))}
	for _, fd := range def.Fields {
		c := fd
		if fd.MinLength != nil {
			n := *fd.MinLength
			c.MinLength = &n
		}
		if fd.MaxLength != nil {
			n := *fd.MaxLength
			c.MaxLength = &n
		}
		if fd.Messages != nil {
			c.Messages = make(map[string]string, len(fd.Messages))
			for k, v := range fd.Messages {
				c.Messages[k] = v
			}
		}
		out.Fields = append(out.Fields, c)
	}
	return out
}
