package service

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/models"
)

// Values of the diagnostic report.
const (
	statusBackendRunning   = "✅ Running"
	statusNotInitialized   = "⚠️  Available but not initialized"
	statusConnectedError   = "⚠️  Connected but Error: "
	statusConnectedWorking = "✅ Connected & Working"
	statusSet              = "✅ Set"
	statusNotSet           = "❌ Not Set"
	connectionConnected    = "Connected"
	connectionNotConnected = "Not Connected"

	// maxErrorSummary bounds the error text shown in the report, in characters.
	maxErrorSummary = 50
)

type diagnosticsService struct {
	gateway store.Gateway
	cfg     config.Database
	logger  *logger.Logger
}

func NewDiagnosticsService(gateway store.Gateway, cfg config.Database, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		gateway: gateway,
		cfg:     cfg,
		logger:  logger,
	}
}

// Report probes the store and describes which settings are present. It
// never exposes the settings themselves.
func (s *diagnosticsService) Report(ctx context.Context) models.Diagnostics {
	report := models.Diagnostics{
		Backend:          statusBackendRunning,
		Database:         statusNotInitialized,
		DatabaseURL:      presence(s.cfg.URL),
		DatabaseName:     presence(s.cfg.Name),
		ConnectionStatus: connectionNotConnected,
		Collections:      []string{},
	}

	if timeout := s.cfg.ConnectTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	probe := s.gateway.Probe(ctx)
	switch probe.State {
	case store.ProbeHealthy:
		report.Database = statusConnectedWorking
		report.ConnectionStatus = connectionConnected
		if probe.Collections != nil {
			report.Collections = probe.Collections
		}
	case store.ProbeDegraded:
		logger.FromContext(ctx).Warn().Err(probe.Err).Msg("document store probe failed")
		report.Database = statusConnectedError + truncate(errorText(probe.Err), maxErrorSummary)
		report.ConnectionStatus = connectionConnected
	}

	return report
}

func presence(value string) string {
	if value != "" {
		return statusSet
	}
	return statusNotSet
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
