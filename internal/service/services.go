package service

import (
	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/crypto"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

type Services struct {
	AuthService        AuthService
	BlogService        BlogService
	ContactService     ContactService
	DiagnosticsService DiagnosticsService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewSchemaValidator()

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, hasher, validator, logger),
		BlogService:        NewBlogService(storages.BlogPostRepository, cfg.Blog, logger),
		ContactService:     NewContactService(storages.ContactMessageRepository, validator, logger),
		DiagnosticsService: NewDiagnosticsService(storages.Gateway, cfg.Database, logger),
		AppInfoService:     appInfoService,
	}, nil
}
