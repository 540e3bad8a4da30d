package service

import (
	"fmt"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/store"
)

type Services struct {
	AuthService    AuthService
	HumanService   HumanService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := NewStaticCredentialVerifier(cfg.App.AdminLogin, cfg.App.AdminPassword, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential verifier: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	humanService := NewHumanValidationService().Wrap(NewHumanService(storages.HumanRepository, logger))

	return &Services{
		AuthService:    NewAuthService(verifier, cfg.App, logger),
		HumanService:   humanService,
		AppInfoService: appInfoService,
	}, nil
}
