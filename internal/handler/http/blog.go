package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
)

const limitParam = "limit"

func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid blog limit")
		writeError(w, r, err)
		return
	}

	posts, err := h.services.BlogService.ListPosts(ctx, limit)
	if err != nil {
		log.Err(err).Msg("listing blog posts failed")
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

// parseLimit returns 0 when the parameter is absent so that the service
// picks its default.
func parseLimit(query url.Values) (int64, error) {
	if !query.Has(limitParam) {
		return 0, nil
	}

	limit, err := strconv.ParseInt(query.Get(limitParam), 10, 64)
	if err != nil {
		return 0, validators.NewValidationError(validators.FieldError{
			Field:  limitParam,
			Reason: "input should be a valid integer",
		})
	}
	if limit <= 0 {
		return 0, validators.NewValidationError(validators.FieldError{
			Field:  limitParam,
			Reason: "input should be greater than 0",
		})
	}
	return limit, nil
}
