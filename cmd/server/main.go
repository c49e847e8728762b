package main

import (
	"os"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/handler"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/server"
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
	build.Print(os.Stdout)

	log := logger.NewLogger("airs-adapter")
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

	log.Debug().
		Str("region", cfg.Adapter.Region).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	scanAPI, err := adapter.NewHTTPScanAdapter(cfg.Adapter, build.UserAgent(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scan API adapter")
	}

	services, err := service.NewServices(scanAPI, *cfg, log)
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

	srv.RunServer()
}
