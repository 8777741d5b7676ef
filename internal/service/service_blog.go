package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

type blogService struct {
	blogPostRepository store.BlogPostRepository
	defaultLimit       int64
	maxLimit           int64
	logger             *logger.Logger
}

func NewBlogService(blogPostRepository store.BlogPostRepository, cfg config.Blog, logger *logger.Logger) BlogService {
	defaultLimit, maxLimit := cfg.DefaultLimit, max(cfg.MaxLimit, 0)
	if defaultLimit <= 0 {
		defaultLimit = config.DefaultBlogLimit
		if maxLimit > 0 {
			defaultLimit = min(defaultLimit, maxLimit)
		}
	}

	return &blogService{
		blogPostRepository: blogPostRepository,
		defaultLimit:       defaultLimit,
		maxLimit:           maxLimit,
		logger:             logger,
	}
}

// ListPosts lists posts by publication date, newest first, with drafts
// last. An unavailable store yields an empty list.
func (s *blogService) ListPosts(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	switch {
	case limit < 0:
		return nil, ErrInvalidLimit
	case limit == 0:
		limit = s.defaultLimit
	case s.maxLimit > 0 && limit > s.maxLimit:
		return nil, validators.NewValidationError(validators.FieldError{
			Field:  "limit",
			Reason: fmt.Sprintf("input should be less than or equal to %d", s.maxLimit),
		})
	}

	posts, err := s.blogPostRepository.ListPosts(ctx, limit)
	if errors.Is(err, store.ErrStoreUnavailable) {
		log.Warn().Err(err).Msg("document store is unavailable, listing no posts")
		return []models.BlogPost{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error listing blog posts: %w", err)
	}

	return posts, nil
}
