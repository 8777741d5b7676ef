package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/service"
	"github.com/MKhiriev/go-saas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{ID: "u-1", Email: req.Email, Name: req.Name}, nil
			},
			loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{Email: req.Email, Plan: models.PlanFree}, nil
			},
		},
		BlogService: &mockBlogService{listPostsFn: func(context.Context, int64) ([]models.BlogPost, error) {
			return []models.BlogPost{}, nil
		}},
		ContactService: &mockContactService{submitMessageFn: func(context.Context, models.ContactRequest) (string, error) {
			return "m-1", nil
		}},
		DiagnosticsService: &mockDiagnosticsService{report: models.Diagnostics{Collections: []string{}}},
		AppInfoService:     &mockAppInfoService{info: models.AppBuildInfo{Version: "test-version"}},
	}
}

func TestInit_RegisteredRoutes(t *testing.T) {
	router := NewHandler(newTestServices(), logger.Nop()).Init()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/", ""},
		{http.MethodGet, "/test", ""},
		{http.MethodGet, "/version", ""},
		{http.MethodGet, "/blog", ""},
		{http.MethodPost, "/auth/register", `{"name":"Ada","email":"ada@example.com","password":"pw"}`},
		{http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"pw"}`},
		{http.MethodPost, "/contact", `{"name":"Ada","email":"ada@example.com","subject":"s","message":"m"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, jsonRequest(tt.method, tt.path, tt.body))

			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteIsJSON404(t *testing.T) {
	rr := serve(t, newTestServices(), httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())
}

func TestInit_WrongMethodIsJSON405(t *testing.T) {
	rr := serve(t, newTestServices(), httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
}

func TestInit_CORSPreflightEchoesOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/auth/register", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")

	rr := serve(t, newTestServices(), req)

	assert.Less(t, rr.Code, http.StatusMultipleChoices)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestInit_CORSActualRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rr := serve(t, newTestServices(), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_GzipResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := serve(t, newTestServices(), req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"SaaS Backend Running"}`, string(body))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svcs := newTestServices()
	svcs.BlogService = &mockBlogService{listPostsFn: func(context.Context, int64) ([]models.BlogPost, error) {
		panic("unexpected")
	}}

	rr := serve(t, svcs, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_RequestTimeoutBoundsContext(t *testing.T) {
	svcs := newTestServices()
	var deadline time.Time
	var hasDeadline bool
	svcs.BlogService = &mockBlogService{listPostsFn: func(ctx context.Context, _ int64) ([]models.BlogPost, error) {
		deadline, hasDeadline = ctx.Deadline()
		return []models.BlogPost{}, nil
	}}

	router := NewHandler(svcs, logger.Nop(), WithRequestTimeout(time.Minute)).Init()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/blog", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestInit_RejectsOversizedBody(t *testing.T) {
	called := false
	services := newTestServices()
	services.ContactService = &mockContactService{submitMessageFn: func(context.Context, models.ContactRequest) (string, error) {
		called = true
		return "m-1", nil
	}}
	router := NewHandler(services, logger.Nop()).Init()

	body := `{"name":"Ada","message":"` + strings.Repeat("a", int(maxRequestBodyBytes)) + `"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, jsonRequest(http.MethodPost, "/contact", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"detail":"Request body too large"}`, rr.Body.String())
	assert.False(t, called)
}

func TestInit_RejectsOversizedGzipBody(t *testing.T) {
	router := NewHandler(newTestServices(), logger.Nop()).Init()

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"email":"` + strings.Repeat(" ", 2*int(maxRequestBodyBytes)) + `"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, compressed.Len(), int(maxRequestBodyBytes))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", &compressed)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
