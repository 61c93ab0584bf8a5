package formhttp

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidBody          = errors.New("invalid request body")
	ErrBodyTooLarge         = errors.New("request body too large")
)
