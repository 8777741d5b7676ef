package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-saas-backend/internal/adapter"
	"github.com/MKhiriev/go-saas-backend/internal/client"
	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		printBuildInfo()
		return
	}

	log := logger.NewConsoleLogger("saas-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(context.Background(), cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
