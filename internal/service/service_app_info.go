package service

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService describes the running release. cfg.Version, when set,
// takes precedence over the version of the build.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.WithRelease(cfg.Name, cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", info.Version).Str("commit", info.Commit).Msg("serving release")
	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(context.Context) models.AppBuildInfo {
	return s.info
}
