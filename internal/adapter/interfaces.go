// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-humans HTTP API.
//
// The primary abstraction is [HumansAPI], which decouples callers such as the
// command-line client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPHumansAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-humans/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HumansAPI defines transport-agnostic communication with the go-humans
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type HumansAPI interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a bearer token. On success the token is
	// stored via SetToken and returned.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Greeting returns the greeting served at the root path.
	Greeting(ctx context.Context) (string, error)

	// ListHumans returns every stored human. The result is never nil.
	ListHumans(ctx context.Context) ([]models.Human, error)

	// GetHuman returns the human with the given id, or [ErrNotFound].
	GetHuman(ctx context.Context, id int64) (models.Human, error)

	// CreateHuman stores a new human and returns it with the assigned id.
	CreateHuman(ctx context.Context, input models.HumanInput) (models.Human, error)

	// UpdateHuman replaces name, age and sex of an existing human.
	UpdateHuman(ctx context.Context, id int64, input models.HumanInput) (models.Human, error)

	// DeleteHuman removes the human with the given id.
	DeleteHuman(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
