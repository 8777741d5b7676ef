package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/crypto"
	"github.com/MKhiriev/go-saas-backend/internal/handler"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/server"
	"github.com/MKhiriev/go-saas-backend/internal/service"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("saas-server")
	if err := run(context.Background(), os.Args[1:], build, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run builds the application from args and the environment and serves it
// until SIGINT or SIGTERM. Resources opened here are released before it
// returns, including on construction errors.
func run(ctx context.Context, args []string, build models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	log.Debug().
		Str("address", cfg.Server.Address).
		Bool("database_url_set", cfg.Database.URL != "").
		Str("password_scheme", cfg.Security.PasswordScheme).
		Msg("received configs")

	storages := store.NewStorages(ctx, cfg.Database, log)
	defer func() {
		if err := storages.Close(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hasher, err := crypto.NewPasswordHasher(cfg.Security)
	if err != nil {
		return fmt.Errorf("error creating password hasher: %w", err)
	}

	services, err := service.NewServices(storages, hasher, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
