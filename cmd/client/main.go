package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/backend-mobile/internal/adapter"
	"github.com/MKhiriev/backend-mobile/internal/client"
	"github.com/MKhiriev/backend-mobile/internal/config"
	"github.com/MKhiriev/backend-mobile/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("backend-mobile-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if flag.NArg() == 0 {
		printBuildInfo()
		fmt.Fprintln(os.Stderr, client.Usage())
		os.Exit(2)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage())
		}
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
