package service

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/models"
)

// AuthService registers accounts and checks credentials. No session or
// token is issued.
type AuthService interface {
	// RegisterUser stores a new free-plan user and returns it with its ID.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login returns the user whose email and password match.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

type BlogService interface {
	// ListPosts returns posts by publication date, newest first. Drafts are
	// included and sort last. A zero limit selects the configured default.
	// A limit above a configured maximum is a validation error.
	ListPosts(ctx context.Context, limit int64) ([]models.BlogPost, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, req models.ContactRequest) (string, error)
}

// DiagnosticsService reports the health of the document store. It never
// fails.
type DiagnosticsService interface {
	Report(ctx context.Context) models.Diagnostics
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
