package store

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

type contactMessageRepository struct {
	logger   *logger.Logger
	messages Collection
}

func NewContactMessageRepository(gateway Gateway, logger *logger.Logger) ContactMessageRepository {
	logger.Debug().Msg("creating contact message repository")
	return &contactMessageRepository{
		messages: gateway.Collection(models.CollectionContactMessages),
		logger:   logger,
	}
}

func (r *contactMessageRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) (string, error) {
	id, err := r.messages.InsertOne(ctx, msg)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactMessageRepository.CreateMessage").Msg("error inserting contact message")
		return "", err
	}
	return id, nil
}
