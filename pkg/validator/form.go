package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FieldErrors holds the messages of one field. A nil FieldErrors means the field
// passed; ValidateField never returns an empty non-nil slice.
type FieldErrors []string

// FieldEntry pairs a value with the rules it is validated against.
type FieldEntry struct {
	Value Value
	Rules RuleSet
}

// Form is an ordered set of named fields. Fields are validated and reported in
// the order they were first added.
type Form struct {
	names   []string
	entries map[string]FieldEntry
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{entries: make(map[string]FieldEntry)}
}

// Add sets the entry for name and returns the form for chaining. Adding a name
// that already exists replaces its entry but keeps its original position.
// The zero Form is ready to use; a nil *Form is not.
func (f *Form) Add(name string, value Value, rules RuleSet) *Form {
	if f.entries == nil {
		f.entries = make(map[string]FieldEntry)
	}
	if _, ok := f.entries[name]; !ok {
		f.names = append(f.names, name)
	}
	f.entries[name] = FieldEntry{Value: value, Rules: rules}
	return f
}

// Get returns the entry stored under name.
func (f *Form) Get(name string) (FieldEntry, bool) {
	if f == nil {
		return FieldEntry{}, false
	}
	entry, ok := f.entries[name]
	return entry, ok
}

// Names returns the field names in insertion order.
func (f *Form) Names() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.names...)
}

func (f *Form) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// FormErrors maps failing field names to their messages, in form order.
// A nil *FormErrors means every field passed.
type FormErrors struct {
	fields []string
	errs   map[string]FieldErrors
}

func (fe *FormErrors) add(field string, errs FieldErrors) {
	if fe.errs == nil {
		fe.errs = make(map[string]FieldErrors)
	}
	if _, ok := fe.errs[field]; !ok {
		fe.fields = append(fe.fields, field)
	}
	fe.errs[field] = errs
}

func (fe *FormErrors) Has(field string) bool {
	if fe == nil {
		return false
	}
	_, ok := fe.errs[field]
	return ok
}

func (fe *FormErrors) Get(field string) FieldErrors {
	if fe == nil {
		return nil
	}
	return fe.errs[field]
}

// Fields returns the failing field names in form order.
func (fe *FormErrors) Fields() []string {
	if fe == nil {
		return nil
	}
	return append([]string(nil), fe.fields...)
}

func (fe *FormErrors) Len() int {
	if fe == nil {
		return 0
	}
	return len(fe.fields)
}

// Map returns a copy of the errors as a plain map. Returns nil for a nil receiver.
func (fe *FormErrors) Map() map[string][]string {
	if fe == nil {
		return nil
	}
	out := make(map[string][]string, len(fe.errs))
	for field, msgs := range fe.errs {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

func (fe *FormErrors) Error() string {
	if fe.Len() == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe.fields))
	for _, field := range fe.fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(fe.errs[field], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for form errors.
func (fe *FormErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// MarshalJSON encodes the errors as a JSON object keyed by field name, keeping
// form order.
func (fe *FormErrors) MarshalJSON() ([]byte, error) {
	if fe == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range fe.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal([]string(fe.errs[field]))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValidateForm validates every field of form in insertion order and collects the
// failing ones. It returns nil when all fields pass or form is nil.
func ValidateForm(form *Form) *FormErrors {
	if form == nil {
		return nil
	}

	var result *FormErrors
	for _, name := range form.names {
		entry := form.entries[name]
		errs := CheckField(name, entry.Value, entry.Rules)
		if errs.IsEmpty() {
			continue
		}
		if result == nil {
			result = &FormErrors{}
		}
		result.add(name, FieldErrors(errs.Get(name)))
	}
	return result
}

// Validate is ValidateForm returning a plain error: nil when every field passes,
// a *FormErrors otherwise.
func Validate(form *Form) error {
	if errs := ValidateForm(form); errs != nil {
		return errs
	}
	return nil
}

// ExtractFormErrors recovers the *FormErrors from an error chain.
func ExtractFormErrors(err error) *FormErrors {
	if err == nil {
		return nil
	}

	var formErr *FormErrors
	if errors.As(err, &formErr) {
		return formErr
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var formErr *FormErrors
	if errors.As(err, &formErr) {
		return true
	}
	var fieldErrs ValidationErrors
	return errors.As(err, &fieldErrs)
}
