package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps every request body, JSON or form.
const maxBodyBytes = 1 << 20

// limitBody replaces r.Body with a reader that fails after maxBodyBytes.
func limitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
}

// decodeJSON decodes exactly one JSON value from the request body into dst.
// Anything but whitespace after the value makes the body malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	limitBody(w, r)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return bodyError(err)
		}
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
