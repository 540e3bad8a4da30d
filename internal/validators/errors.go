package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-humans/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidHuman       = errors.New("invalid human")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports every field that failed validation. It wraps one
// of the sentinel errors above so callers can match it with [errors.Is], and
// exposes Fields for building per-field responses.
type ValidationError struct {
	Err    error
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return e.Err.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
