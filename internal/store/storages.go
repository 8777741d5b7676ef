package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
)

// Storages groups the gateway and every repository built on it into a
// single value handed to the service layer.
type Storages struct {
	Gateway                  Gateway
	UserRepository           UserRepository
	BlogPostRepository       BlogPostRepository
	ContactMessageRepository ContactMessageRepository
}

// NewStorages opens the store selected by cfg.URL. It never fails: when
// DATABASE_URL is empty or the store cannot be reached, the repositories
// are built on a degraded gateway and the reason is logged.
func NewStorages(ctx context.Context, cfg config.Database, log *logger.Logger) *Storages {
	log.Info().Msg("creating new storages...")

	gateway, err := OpenGateway(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("document store is unavailable, running degraded")
		gateway = NewUnavailableGateway(err)
	}

	return NewStoragesWithGateway(gateway, log)
}

// NewStoragesWithGateway wires the repositories on an existing gateway.
func NewStoragesWithGateway(gateway Gateway, log *logger.Logger) *Storages {
	return &Storages{
		Gateway:                  gateway,
		UserRepository:           NewUserRepository(gateway, log),
		BlogPostRepository:       NewBlogPostRepository(gateway, log),
		ContactMessageRepository: NewContactMessageRepository(gateway, log),
	}
}

// OpenGateway connects the backend chosen by the scheme of cfg.URL.
func OpenGateway(ctx context.Context, cfg config.Database, log *logger.Logger) (Gateway, error) {
	dsn := strings.TrimSpace(cfg.URL)
	if dsn == "" {
		return nil, ErrStoreNotConfigured
	}
	cfg.URL = dsn
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = config.DefaultConnectTimeout
	}

	switch {
	case isMongoURL(dsn):
		return NewConnectMongo(ctx, cfg, log)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case isSQLiteURL(dsn):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: unknown scheme", ErrUnsupportedDSN)
	}
}

// Close releases the gateway.
func (s *Storages) Close(ctx context.Context) error {
	return s.Gateway.Close(ctx)
}
