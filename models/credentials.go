package models

// Credentials is the username/password pair submitted to the login endpoint,
// either as a JSON object or as an HTML form.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
