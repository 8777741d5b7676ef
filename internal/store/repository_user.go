package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

// userRepository is the [Gateway]-backed implementation of [UserRepository].
// It handles account creation and lookup in the "saasuser" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger *logger.Logger
	users  Collection
}

// NewUserRepository constructs a [UserRepository] on top of gateway.
func NewUserRepository(gateway Gateway, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  gateway.Collection(models.CollectionUsers),
		logger: logger,
	}
}

// CreateUser persists user and returns the identifier assigned by the store.
//
// Error handling:
//   - unique index on email → [ErrDuplicateKey].
//   - store unreachable → [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	log := logger.FromContext(ctx)

	id, err := r.users.InsertOne(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return "", err
	}

	return id, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
// Returns [ErrNotFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := r.users.FindOne(ctx, Filter{"email": email}, &user); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		}
		return models.User{}, err
	}

	user.ApplyDefaults()
	return user, nil
}
