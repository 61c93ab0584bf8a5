package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Value is anything a RuleSet can be evaluated against.
//
// IsEmpty drives the required check, Len drives the length checks and String is
// the text the pattern is matched against. Values without a natural size (numbers,
// booleans, absent values) report a length of zero.
type Value interface {
	IsEmpty() bool
	Len() int
	String() string
}

// Text is a textual value. Its length is the number of characters after NFC
// normalization, so a precomposed and a decomposed "é" both count as one.
type Text string

func (t Text) IsEmpty() bool { return t == "" }

func (t Text) Len() int {
	s := string(t)
	if norm.NFC.IsNormalString(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func (t Text) String() string { return string(t) }

type absent struct{}

func (absent) IsEmpty() bool  { return true }
func (absent) Len() int       { return 0 }
func (absent) String() string { return "" }

// Absent returns the value used for a field that was not supplied at all.
func Absent() Value { return absent{} }

// Int is an integer value. Zero is empty.
type Int int64

func (i Int) IsEmpty() bool  { return i == 0 }
func (i Int) Len() int       { return 0 }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a floating point value. Zero and NaN are empty.
type Float float64

func (f Float) IsEmpty() bool  { return f == 0 || math.IsNaN(float64(f)) }
func (f Float) Len() int       { return 0 }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Bool is a boolean value. False is empty.
type Bool bool

func (b Bool) IsEmpty() bool  { return !bool(b) }
func (b Bool) Len() int       { return 0 }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// List is a multi-valued field such as a repeated form key or a set of checkboxes.
// Its length is the number of elements.
type List []string

func (l List) IsEmpty() bool  { return len(l) == 0 }
func (l List) Len() int       { return len(l) }
func (l List) String() string { return strings.Join(l, ",") }

// Of converts an arbitrary Go value into a Value.
//
// nil and nil pointers become Absent, strings become Text, integers Int, floats
// Float, booleans Bool and string slices List. A []any is converted element by
// element into a List. Anything else is rendered with fmt and treated as Text.
func Of(v any) Value {
	switch val := v.(type) {
	case nil:
		return Absent()
	case Value:
		return val
	case string:
		return Text(val)
	case *string:
		if val == nil {
			return Absent()
		}
		return Text(*val)
	case bool:
		return Bool(val)
	case int:
		return Int(val)
	case int8:
		return Int(val)
	case int16:
		return Int(val)
	case int32:
		return Int(val)
	case int64:
		return Int(val)
	case uint:
		return Int(val)
	case uint8:
		return Int(val)
	case uint16:
		return Int(val)
	case uint32:
		return Int(val)
	case uint64:
		if val > math.MaxInt64 {
			return Text(strconv.FormatUint(val, 10))
		}
		return Int(val)
	case float32:
		return Float(val)
	case float64:
		return Float(val)
	case []string:
		return List(val)
	case []any:
		out := make(List, 0, len(val))
		for _, item := range val {
			out = append(out, Of(item).String())
		}
		return out
	case fmt.Stringer:
		if isNilPointer(val) {
			return Absent()
		}
		return Text(val.String())
	}

	if isNilPointer(v) {
		return Absent()
	}
	return Text(fmt.Sprint(v))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
