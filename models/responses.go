package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// Token is the compact signed JWT to be sent back in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`
}

// ErrorResponse is the body of every error response.
//
// Detail is either a human-readable message or, for validation failures,
// a list of [FieldError].
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
