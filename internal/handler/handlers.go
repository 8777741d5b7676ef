package handler

import (
	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/handler/http"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, http.WithRequestTimeout(cfg.RequestTimeout)),
	}, nil
}
