package handler

import (
	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/handler/http"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/service"
)

// Handlers groups the transports the server exposes. go-humans only speaks
// HTTP.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler. It fails when cfg has no HTTP
// address, since the server would then have nothing to listen on.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
