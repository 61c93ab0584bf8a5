package ruleset

import "errors"

var (
	ErrInvalidDocument   = errors.New("ruleset: invalid document")
	ErrMissingName       = errors.New("ruleset: name is required")
	ErrInvalidLength     = errors.New("ruleset: invalid length constraint")
	ErrInvalidPattern    = errors.New("ruleset: invalid pattern")
	ErrUnknownCheck      = errors.New("ruleset: unknown check in messages")
	ErrDuplicateField    = errors.New("ruleset: duplicate field")
	ErrDuplicateSchema   = errors.New("ruleset: duplicate schema")
	ErrSchemaNotFound    = errors.New("ruleset: schema not found")
	ErrUnsupportedFormat = errors.New("ruleset: unsupported file format")
	ErrParseCancelled    = errors.New("ruleset: parsing cancelled")
)
