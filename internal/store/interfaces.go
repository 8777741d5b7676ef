package store

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository stores accounts in the "saasuser" collection.
type UserRepository interface {
	// CreateUser inserts user and returns its identifier. A second user with
	// the same email fails with ErrDuplicateKey.
	CreateUser(ctx context.Context, user *models.User) (string, error)
	// FindUserByEmail returns ErrNotFound when no user has that email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BlogPostRepository reads the "blogpost" collection.
type BlogPostRepository interface {
	// ListPosts returns at most limit posts, newest published first.
	ListPosts(ctx context.Context, limit int64) ([]models.BlogPost, error)
}

// ContactMessageRepository stores contact form submissions.
type ContactMessageRepository interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) (string, error)
}
