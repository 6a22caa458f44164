package http

import (
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/validators"
)

type Handler struct {
	repos     *store.Storages
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(repos *store.Storages, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		repos:     repos,
		validator: validator,
		logger:    logger,
	}
}
