package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

type contactService struct {
	contactMessageRepository store.ContactMessageRepository
	validator                validators.Validator
	now                      func() time.Time
	logger                   *logger.Logger
}

func NewContactService(contactMessageRepository store.ContactMessageRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactMessageRepository: contactMessageRepository,
		validator:                validator,
		now:                      time.Now,
		logger:                   logger,
	}
}

// SubmitMessage stores the submission stamped with the current time and
// returns its ID.
func (s *contactService) SubmitMessage(ctx context.Context, req models.ContactRequest) (string, error) {
	msg := models.NewContactMessage(req, s.now())
	if err := s.validator.Validate(ctx, msg); err != nil {
		return "", err
	}

	id, err := s.contactMessageRepository.CreateMessage(ctx, msg)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("contact message was not saved")
		return "", fmt.Errorf("contact message was not saved: %w", err)
	}

	return id, nil
}
