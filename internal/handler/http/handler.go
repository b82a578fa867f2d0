package http

import (
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/internal/store"
)

type Handler struct {
	services *service.Services
	files    store.FileStore

	logger *logger.Logger
}

func NewHandler(services *service.Services, files store.FileStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		files:    files,
		logger:   logger,
	}
}
