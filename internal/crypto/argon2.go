// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2KeyLen  = 32 // 256 bits
	argon2SaltLen = 16

	// Upper bounds accepted when parsing stored digests.
	argon2MaxTime   = 64
	argon2MaxMemory = 4 * 1024 * 1024 // 4 GiB in KiB
	argon2MaxKeyLen = 128
)

// argon2Params are the Argon2id tuning parameters. The defaults follow the
// OWASP recommendation: 1 iteration, 64 MiB, 4 threads, 32-byte key.
type argon2Params struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// hashArgon2id derives a key from password and a random 16-byte salt and
// encodes both in the PHC string format.
func hashArgon2id(password string, p argon2Params) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2id(password, digest string) bool {
	p, salt, key, err := parseArgon2id(digest)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// parseArgon2id splits $argon2id$v=19$m=..,t=..,p=..$salt$hash into its
// parameters, salt and key, rejecting values argon2 would panic on.
func parseArgon2id(digest string) (argon2Params, []byte, []byte, error) {
	var p argon2Params

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrMalformedDigest
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &threads); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	if threads < 1 || threads > 255 || p.time < 1 || p.time > argon2MaxTime ||
		p.memory < 8*threads || p.memory > argon2MaxMemory {
		return p, nil, nil, ErrMalformedDigest
	}
	p.threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrMalformedDigest
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > argon2MaxKeyLen {
		return p, nil, nil, ErrMalformedDigest
	}
	p.keyLen = uint32(len(key))

	return p, salt, key, nil
}
