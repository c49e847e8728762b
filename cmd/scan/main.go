package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/client"
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/service"
	"github.com/MKhiriev/go-airs-adapter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	build.Print(os.Stderr)

	log := logger.NewCLILogger("airs-scan")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}

	scanAPI, err := adapter.NewHTTPScanAdapter(cfg.Adapter, build.UserAgent(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scan API adapter")
	}

	services, err := service.NewServices(scanAPI, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	input, err := client.OpenInput(cfg.CLI.InputPath, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening input")
	}
	defer input.Close()

	app, err := client.NewApp(services.ScanService, input, os.Stdout, cfg.Scan.ContinueOnFail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init scan app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	runErr := app.Run(ctx)
	stop()

	if runErr != nil {
		log.Error().Err(runErr).Msg("scan run failed")
		input.Close()
		os.Exit(1)
	}
}
