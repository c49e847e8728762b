package http

import (
	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/service"
)

type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	// continueOnFail is used when a request does not choose for itself.
	continueOnFail bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		continueOnFail: cfg.Scan.ContinueOnFail,
		logger:         logger,
	}

	logger.Info().Bool("auth", h.authEnabled()).Msg("http handler created")
	return h
}

// authEnabled reports whether /api/scan requires a bearer token.
func (h *Handler) authEnabled() bool {
	return h.tokenSignKey != ""
}
