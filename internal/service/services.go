package service

import (
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/store"
	"github.com/MKhiriev/backend-mobile/models"
)

type Services struct {
	AuthService    AuthService
	ProdukService  ProdukService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices builds every service on top of storages. Auth and product
// services are wrapped with their validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.MemberRepository, cfg.App, logger)
	produkService := NewProdukService(storages.ProdukRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		ProdukService:  NewProdukValidationService().Wrap(produkService),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
