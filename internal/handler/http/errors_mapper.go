package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/service"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

// errorResponse is the status and client-facing detail of a known error.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrEmailAlreadyRegistered: {http.StatusBadRequest, "Email already registered"},
	service.ErrInvalidCredentials:     {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrInvalidLimit:           {http.StatusUnprocessableEntity, service.ErrInvalidLimit.Error()},

	store.ErrStoreUnavailable: {http.StatusInternalServerError, "Database not configured"},
}

var internalError = errorResponse{
	status: http.StatusInternalServerError,
	detail: http.StatusText(http.StatusInternalServerError),
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalError
}

// writeError renders err as {"detail": ...}. Validation errors list every
// offending field; anything unknown is reported as a bare 500 so that driver
// messages never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: fieldViolations(verr)}, http.StatusUnprocessableEntity)
		return
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: "Request body too large"}, http.StatusRequestEntityTooLarge)
		return
	}

	resp := responseFromError(err)
	if resp == internalError {
		logger.FromRequest(r).Error().Err(err).Msg("unexpected error")
	}
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: resp.detail}, resp.status)
}

func fieldViolations(verr *validators.ValidationError) []models.FieldViolation {
	violations := make([]models.FieldViolation, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		violations = append(violations, models.FieldViolation{Field: f.Field, Message: f.Reason})
	}
	return violations
}
