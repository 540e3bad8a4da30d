package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-humans/internal/adapter"
	"github.com/MKhiriev/go-humans/internal/client"
	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("go-humans-client", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-humans-client", cfg.Verbose)
	if cfg.Verbose {
		// stdout carries only command output
		fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	}

	api, err := adapter.NewHTTPHumansAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, cfg.Credentials, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrMissingCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrWrongArgCount) {
			client.Usage(os.Stderr)
		}
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
