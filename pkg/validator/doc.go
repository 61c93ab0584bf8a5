// Package validator evaluates values against small declarative rule sets and
// reports human-readable messages for the checks they fail.
//
// A RuleSet carries up to four checks: required, minLength, maxLength and
// pattern. ValidateField runs every check that is set, in that order, and never
// stops at the first failure, so a single value may collect several messages.
// ValidateForm applies ValidateField to each field of an ordered Form and keeps
// only the fields that failed.
//
// Both functions are pure: they hold no state, perform no I/O and are safe for
// concurrent use. Passing validation is signalled by a nil result, never by an
// empty collection.
//
// # Values
//
// Anything implementing Value can be validated. The package ships Text, Int,
// Float, Bool, List and Absent, and Of converts plain Go values:
//
//	validator.Of("abc")      // Text
//	validator.Of(nil)        // Absent
//	validator.Of(0)          // Int, empty for the required check
//	validator.Of([]string{}) // List, empty
//
// Values without a natural size (numbers, booleans, absent values) report a
// length of zero: they fail minLength and pass maxLength.
//
// # Messages
//
// A RuleSet may carry a custom message per check. Missing or empty messages fall
// back to the Default*Message constants; the length defaults embed the limit.
//
// # Usage
//
//	form := validator.NewForm().
//	    Add("name", validator.Text(name), validator.Rules(
//	        validator.Required(),
//	        validator.Message(validator.CheckRequired, "Name required"),
//	    )).
//	    Add("code", validator.Text(code), validator.Rules(
//	        validator.MinLength(3),
//	        validator.MatchString(`^[a-z]+$`),
//	    ))
//
//	if errs := validator.ValidateForm(form); errs != nil {
//	    for _, field := range errs.Fields() {
//	        fmt.Println(field, errs.Get(field))
//	    }
//	}
//
// # Error Handling
//
// Validate returns the same result as a plain error. *FormErrors implements
// error, matches ErrValidationFailed through errors.Is and can be recovered with
// ExtractFormErrors. CheckField exposes structured ValidationErrors carrying a
// translation key and parameters for callers with their own translation layer.
package validator
