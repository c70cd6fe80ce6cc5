package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/handler"
	"github.com/MKhiriev/backend-mobile/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// HTTP server down gracefully. It returns the listener error if serving
// could not start or failed.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		if err := <-served; err != nil {
			return err
		}
	case err := <-served:
		if err != nil {
			return err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
