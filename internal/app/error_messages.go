// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-humans server handlers, middleware and client.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgCouldNotValidateCredentials is returned with 401 when the bearer
	// token is missing, malformed, or fails verification.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgTokenIsExpired is returned with 401 when a bearer token is
	// well-formed and correctly signed but its expiry time has passed.
	MsgTokenIsExpired = "Token is expired"

	// MsgInvalidCredentials is returned with 400 when the login endpoint
	// receives a username/password pair that does not match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgHumanNotFound is returned with 404 when the addressed record
	// does not exist.
	MsgHumanNotFound = "Human not found"

	// MsgNotAuthenticated is returned with 401 when the request carries no
	// "Authorization" header.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidPathID is returned with 422 when the {id} path segment is
	// not an integer.
	MsgInvalidPathID = "Path parameter id should be a valid integer"

	// MsgConstraintViolation is returned with 422 when the database rejects
	// a record that passed request validation.
	MsgConstraintViolation = "Human does not satisfy storage constraints"

	// MsgInvalidJSON is returned with 422 when the request body cannot be
	// decoded.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgBodyTooLarge is returned with 413 when a request body exceeds the
	// server's size limit.
	MsgBodyTooLarge = "Request body too large"

	// MsgNotFound is returned with 404 for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned with 405 when the route exists but
	// does not accept the request method.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned with 500 when an unexpected
	// server-side failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
