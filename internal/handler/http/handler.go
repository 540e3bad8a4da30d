package http

import (
	"time"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/service"
)

type Handler struct {
	services *service.Services

	// authDisabled removes the bearer token check from every route.
	authDisabled bool

	// requestTimeout bounds the context of every request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_disabled", cfg.App.AuthDisabled).Msg("http handler created")
	return &Handler{
		services:       services,
		authDisabled:   cfg.App.AuthDisabled,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
