package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer implements adapter.ServerAdapter and records the last call.
type fakeServer struct {
	lastRegister models.RegisterRequest
	lastLogin    models.LoginRequest
	lastContact  models.ContactRequest
	lastLimit    int64
	err          error
}

func (f *fakeServer) Root(context.Context) (models.MessageResponse, error) {
	return models.MessageResponse{Message: "SaaS Backend Running"}, f.err
}

func (f *fakeServer) Diagnostics(context.Context) (models.Diagnostics, error) {
	return models.Diagnostics{Backend: "✅ Running", Collections: []string{}}, f.err
}

func (f *fakeServer) Version(context.Context) (models.AppBuildInfo, error) {
	return models.AppBuildInfo{Version: "v1.0.0", Date: "N/A", Commit: "abc"}, f.err
}

func (f *fakeServer) Register(_ context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	f.lastRegister = req
	return models.RegisterResponse{ID: "u-1", Email: req.Email, Name: req.Name}, f.err
}

func (f *fakeServer) Login(_ context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	f.lastLogin = req
	return models.LoginResponse{Email: req.Email, Plan: models.PlanFree}, f.err
}

func (f *fakeServer) ListBlogPosts(_ context.Context, limit int64) ([]models.BlogPost, error) {
	f.lastLimit = limit
	return []models.BlogPost{}, f.err
}

func (f *fakeServer) SubmitContact(_ context.Context, req models.ContactRequest) (models.ContactResponse, error) {
	f.lastContact = req
	return models.ContactResponse{Success: true, ID: "m-1"}, f.err
}

func run(t *testing.T, server *fakeServer, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewApp(server, &out, logger.Nop()).Run(context.Background(), args)
	return out.String(), err
}

func TestRun_Commands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "status", args: []string{"status"}, want: `{"message":"SaaS Backend Running"}`},
		{name: "version", args: []string{"version"}, want: `{"version":"v1.0.0","build_date":"N/A","build_commit":"abc"}`},
		{name: "register", args: []string{"register", "Ada", "ada@example.com", "pw"}, want: `{"id":"u-1","email":"ada@example.com","name":"Ada"}`},
		{name: "login", args: []string{"login", "ada@example.com", "pw"}, want: `{"email":"ada@example.com","name":"","plan":"free"}`},
		{name: "blog", args: []string{"blog", "5"}, want: `[]`},
		{name: "contact", args: []string{"contact", "Ada", "ada@example.com", "Hi", "Hello"}, want: `{"success":true,"id":"m-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, &fakeServer{}, tt.args...)

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestRun_PassesArguments(t *testing.T) {
	server := &fakeServer{}

	_, err := run(t, server, "register", "Ada", "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"}, server.lastRegister)

	_, err = run(t, server, "contact", "Ada", "ada@example.com", "Pricing", "How much?")
	require.NoError(t, err)
	assert.Equal(t, models.ContactRequest{Name: "Ada", Email: "ada@example.com", Subject: "Pricing", Message: "How much?"}, server.lastContact)

	_, err = run(t, server, "blog")
	require.NoError(t, err)
	assert.Zero(t, server.lastLimit)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown", args: []string{"delete"}, wantErr: ErrUnknownCommand},
		{name: "missing args", args: []string{"login", "ada@example.com"}, wantErr: ErrUsage},
		{name: "too many blog args", args: []string{"blog", "1", "2"}, wantErr: ErrUsage},
		{name: "bad limit", args: []string{"blog", "ten"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, &fakeServer{}, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestRun_ServerError(t *testing.T) {
	boom := errors.New("connection refused")

	out, err := run(t, &fakeServer{err: boom}, "status")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out)
}

func TestUsage_ListsEveryCommand(t *testing.T) {
	usage := Usage()
	for name := range commands {
		assert.Contains(t, usage, name)
	}
}
