package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/backend-mobile/internal/logger"
)

type healthService struct {
	pinger Pinger

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("store ping failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
