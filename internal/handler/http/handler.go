package http

import (
	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/service"
)

type Handler struct {
	services *service.Services

	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		corsOrigins: cfg.CORSOrigins,
		logger:      logger,
	}
}
