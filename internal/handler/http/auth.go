package http

import (
	"net/http"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := validators.DecodeJSON(ctx, r.Body, &req, h.validator); err != nil {
		log.Err(err).Msg("invalid registration request")
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := validators.DecodeJSON(ctx, r.Body, &req, h.validator); err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Email: user.Email,
		Name:  user.Name,
		Plan:  user.Plan,
	}, http.StatusOK)
}
