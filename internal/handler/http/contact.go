package http

import (
	"net/http"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ContactRequest
	if err := validators.DecodeJSON(ctx, r.Body, &req, h.validator); err != nil {
		log.Err(err).Msg("invalid contact request")
		writeError(w, r, err)
		return
	}

	id, err := h.services.ContactService.SubmitMessage(ctx, req)
	if err != nil {
		log.Err(err).Msg("storing contact message failed")
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ContactResponse{Success: true, ID: id}, http.StatusOK)
}
