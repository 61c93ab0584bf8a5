package validator

import "errors"

var (
	// ErrValidationFailed matches any *FormErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
