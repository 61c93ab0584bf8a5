package formhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxBodySize is the default request body limit (1MB).
const DefaultMaxBodySize = 1 << 20

// Bind reads the request body into raw field values suitable for
// ruleset.Schema.Validate.
//
// JSON bodies must hold a single object; its members are passed through as
// decoded. URL-encoded and multipart bodies yield a string for single-valued
// fields and a []string for repeated ones. Uploaded files are ignored.
func Bind(r *http.Request, maxBytes int64) (map[string]any, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json, application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch {
	case mediaType == "application/json":
		return bindJSON(r, maxBytes)
	case mediaType == "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		return flatten(r.PostForm), nil
	case strings.HasPrefix(mediaType, "multipart/"):
		if mediaType != "multipart/form-data" {
			return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
		}
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrInvalidBody)
		}
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, formError(err)
		}
		defer r.MultipartForm.RemoveAll()
		return flatten(r.MultipartForm.Value), nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

func bindJSON(r *http.Request, maxBytes int64) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	var input map[string]any
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidBody)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}
	return input, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %v", ErrInvalidBody, err)
}

func flatten(values map[string][]string) map[string]any {
	input := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			input[key] = vals[0]
		default:
			input[key] = append([]string(nil), vals...)
		}
	}
	return input
}
