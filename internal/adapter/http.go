package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
	"github.com/MKhiriev/go-saas-backend/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.Address. An address without a scheme
// is treated as http.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().Str("method", req.Method).Str("url", req.URL).Msg("sending request")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Root(ctx context.Context) (models.MessageResponse, error) {
	var banner models.MessageResponse
	err := h.get(ctx, "/", nil, &banner)
	return banner, err
}

func (h *httpServerAdapter) Diagnostics(ctx context.Context) (models.Diagnostics, error) {
	var report models.Diagnostics
	err := h.get(ctx, "/test", nil, &report)
	return report, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	err := h.get(ctx, "/version", nil, &info)
	return info, err
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse
	err := h.post(ctx, "/auth/register", req, &registered)
	return registered, err
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var found models.LoginResponse
	err := h.post(ctx, "/auth/login", req, &found)
	return found, err
}

func (h *httpServerAdapter) ListBlogPosts(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	query := url.Values{}
	if limit != 0 {
		query.Set("limit", strconv.FormatInt(limit, 10))
	}

	posts := []models.BlogPost{}
	err := h.get(ctx, "/blog", query, &posts)
	return posts, err
}

func (h *httpServerAdapter) SubmitContact(ctx context.Context, req models.ContactRequest) (models.ContactResponse, error) {
	var ack models.ContactResponse
	err := h.post(ctx, "/contact", req, &ack)
	return ack, err
}

func (h *httpServerAdapter) get(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}
