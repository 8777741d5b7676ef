package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const bcryptMaxPasswordLen = 72

func hashBcrypt(password string, cost int) (string, error) {
	if len(password) > bcryptMaxPasswordLen {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

func verifyBcrypt(password, digest string) bool {
	if len(password) > bcryptMaxPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
