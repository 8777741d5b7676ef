package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-saas-backend/internal/crypto"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/store"
	"github.com/MKhiriev/go-saas-backend/internal/validators"
	"github.com/MKhiriev/go-saas-backend/models"
)

// dummyPassword feeds the digest verified when the email is unknown, so
// that both failed-login paths cost one verification.
const dummyPassword = "dummy-password-for-unknown-users"

// authService is the concrete implementation of AuthService.
// It handles registration and credential checks using a UserRepository for
// persistence and a PasswordHasher for digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies password digests.
	hasher crypto.PasswordHasher

	// validator checks user documents before they are stored.
	validator validators.Validator

	dummyOnce   sync.Once
	dummyDigest string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It rejects an email that is already taken, hashes the password and stores
// an active free-plan user stamped with the current time.
//
// Returns the stored user (with a store-assigned ID) or:
//   - ErrEmailAlreadyRegistered if the email is taken, including when a
//     concurrent registration wins the unique index.
//   - *validators.ValidationError on field "password" if the password cannot
//     be hashed by the configured scheme.
//   - A wrapped storage error otherwise (see store.ErrStoreUnavailable).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Msg("registration with an already registered email")
		return models.User{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	digest, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.User{}, validators.NewValidationError(validators.FieldError{
			Field:  "password",
			Reason: "password must be at most 72 bytes long",
		})
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.NewUser(req.Name, req.Email, digest, a.now())
	if err = a.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	id, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrDuplicateKey) {
		log.Info().Msg("concurrent registration with the same email")
		return models.User{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	user.ID = id
	return *user, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// A digest stored with a legacy scheme or outdated parameters is reported
// in the log but left untouched.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		a.hasher.Verify(req.Password, a.dummy())
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Str("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		log.Info().Str("id", user.ID).Msg("stored password digest needs rehash")
	}

	user.ApplyDefaults()
	return user, nil
}

func (a *authService) dummy() string {
	a.dummyOnce.Do(func() {
		digest, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("error hashing dummy password")
			return
		}
		a.dummyDigest = digest
	})
	return a.dummyDigest
}
