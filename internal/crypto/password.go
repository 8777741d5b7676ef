// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Supported schemes for new digests.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	scheme     string
	bcryptCost int
	argon      argon2Params

	// legacyKey verifies bare HMAC-SHA256 digests. Empty disables them.
	legacyKey string
}

// NewPasswordHasher constructs a [PasswordHasher] from the security settings.
// The bcrypt cost is clamped to the range bcrypt accepts.
//
// Returns ErrUnsupportedScheme for a scheme other than bcrypt or argon2id.
func NewPasswordHasher(cfg config.Security) (PasswordHasher, error) {
	scheme := strings.ToLower(strings.TrimSpace(cfg.PasswordScheme))
	if scheme == "" {
		scheme = SchemeBcrypt
	}
	if scheme != SchemeBcrypt && scheme != SchemeArgon2id {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, cfg.PasswordScheme)
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = config.DefaultBcryptCost
	}
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	argon := argon2Params{
		time:    cfg.Argon2Time,
		memory:  cfg.Argon2Memory,
		threads: cfg.Argon2Threads,
		keyLen:  argon2KeyLen,
	}
	if argon.time == 0 {
		argon.time = config.DefaultArgon2Time
	}
	if argon.memory == 0 {
		argon.memory = config.DefaultArgon2Memory
	}
	if argon.threads == 0 {
		argon.threads = config.DefaultArgon2Threads
	}

	return &passwordHasher{
		scheme:     scheme,
		bcryptCost: cost,
		argon:      argon,
		legacyKey:  cfg.LegacyHMACKey,
	}, nil
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string) (string, error) {
	if h.scheme == SchemeArgon2id {
		return hashArgon2id(password, h.argon)
	}
	return hashBcrypt(password, h.bcryptCost)
}

// Verify implements [PasswordHasher]. The scheme is read from the digest, so
// digests of every supported scheme verify regardless of the configured one.
func (h *passwordHasher) Verify(password, digest string) bool {
	switch identify(digest) {
	case kindBcrypt:
		return verifyBcrypt(password, digest)
	case kindArgon2id:
		return verifyArgon2id(password, digest)
	case kindPBKDF2:
		return verifyPBKDF2(password, digest)
	case kindHMAC:
		return verifyHMAC(password, digest, h.legacyKey)
	default:
		return false
	}
}

// NeedsRehash implements [PasswordHasher].
func (h *passwordHasher) NeedsRehash(digest string) bool {
	switch identify(digest) {
	case kindBcrypt:
		if h.scheme != SchemeBcrypt {
			return true
		}
		cost, err := bcrypt.Cost([]byte(digest))
		return err != nil || cost != h.bcryptCost
	case kindArgon2id:
		if h.scheme != SchemeArgon2id {
			return true
		}
		params, _, _, err := parseArgon2id(digest)
		return err != nil || params != h.argon
	default:
		return true
	}
}

type digestKind int

const (
	kindUnknown digestKind = iota
	kindBcrypt
	kindArgon2id
	kindPBKDF2
	kindHMAC
)

func identify(digest string) digestKind {
	switch {
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return kindBcrypt
	case strings.HasPrefix(digest, "$argon2id$"):
		return kindArgon2id
	case strings.HasPrefix(digest, "$pbkdf2-sha256$"):
		return kindPBKDF2
	case isHexSHA256(digest):
		return kindHMAC
	default:
		return kindUnknown
	}
}
