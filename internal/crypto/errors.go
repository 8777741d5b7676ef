package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by bcrypt hashing for passwords longer
	// than 72 bytes.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	// ErrUnsupportedScheme is returned when the configured scheme is unknown.
	ErrUnsupportedScheme = errors.New("unsupported password scheme")
	// ErrMalformedDigest is returned by digest parsers.
	ErrMalformedDigest = errors.New("malformed password digest")
)
