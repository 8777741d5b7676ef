package service

import "errors"

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidLimit           = errors.New("limit must be a positive integer")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
