package http

import (
	"net/http"

	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/models"
)

const bannerMessage = "SaaS Backend Running"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: bannerMessage}, http.StatusOK)
}

// diagnostics always answers 200; store problems are reported in the body.
func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.Report(r.Context())
	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
