package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/handler"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/server"
	"github.com/MKhiriev/go-humans/internal/service"
	"github.com/MKhiriev/go-humans/internal/store"
	"github.com/MKhiriev/go-humans/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-humans-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a version injected at build time wins over the default
	if cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("auth_disabled", cfg.App.AuthDisabled).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}
