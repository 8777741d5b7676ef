// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the SaaS backend HTTP API.
//
// [ServerAdapter] decouples callers (the command-line client and end-to-end
// tests) from the transport. Error responses are mapped by mapHTTPError to
// the sentinel values in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401); 422 responses also carry the offending
// fields through [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/models"
)

// ServerAdapter defines communication with the SaaS backend.
type ServerAdapter interface {
	// Root fetches the service banner from GET /.
	Root(ctx context.Context) (models.MessageResponse, error)

	// Diagnostics fetches the store health report from GET /test.
	Diagnostics(ctx context.Context) (models.Diagnostics, error)

	// Version fetches the release and build of the server from GET /version.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// Register creates a free-plan account.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login checks credentials. No session or token is returned.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ListBlogPosts returns posts newest first. A zero limit lets the server
	// pick its default.
	ListBlogPosts(ctx context.Context, limit int64) ([]models.BlogPost, error)

	// SubmitContact stores a contact-form message and returns its ID.
	SubmitContact(ctx context.Context, req models.ContactRequest) (models.ContactResponse, error)
}
