package formhttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// ValidResponse is returned when every field passes.
type ValidResponse struct {
	Valid bool `json:"valid"`
}

// ErrorsResponse carries the failing fields in schema order.
type ErrorsResponse struct {
	Errors *validator.FormErrors `json:"errors"`
}

// ErrorResponse describes a request that could not be validated at all.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SchemasResponse lists the registered schema names.
type SchemasResponse struct {
	Schemas []string `json:"schemas"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// statusFor maps binding and lookup errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ruleset.ErrSchemaNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
