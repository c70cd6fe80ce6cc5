package http

import (
	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
	"github.com/MKhiriev/backend-mobile/internal/metrics"
	"github.com/MKhiriev/backend-mobile/internal/service"
	"github.com/MKhiriev/backend-mobile/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metrics     *metrics.Metrics
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg,
		metrics:     metrics.NewMetrics(),
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
