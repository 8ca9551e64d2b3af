package http

import (
	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/service"
)

type Handler struct {
	services *service.Services

	// enforceHTTPS toggles the plain-HTTP redirect middleware.
	// Disabled in tests.
	enforceHTTPS bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		enforceHTTPS: cfg.EnforceHTTPS,
		logger:       logger,
	}
}
