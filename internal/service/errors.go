package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidHumanID = errors.New("invalid human id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
