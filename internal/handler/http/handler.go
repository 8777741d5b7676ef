package http

import (
	"time"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/service"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// requestTimeout bounds every request context; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithRequestTimeout cancels request contexts after d.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services:  services,
		validator: validators.NewSchemaValidator(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
