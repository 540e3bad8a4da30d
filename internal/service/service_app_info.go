package service

import (
	"context"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
)

type appInfoService struct {
	greeting   string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	greeting := cfg.Greeting
	if greeting == "" {
		greeting = config.DefaultGreeting
	}

	return &appInfoService{
		greeting:   greeting,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Greeting(ctx context.Context) string {
	return s.greeting
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
