package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-saas-backend/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrValidation          = errors.New("request validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx response of the API.
type APIError struct {
	Status int
	// Detail is the message of {"detail": "..."} bodies, or the raw body
	// when it is not in that shape.
	Detail string
	// Fields lists the offending fields of a 422 response.
	Fields []models.FieldViolation

	kind error
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (http %d): %v", e.kind, e.Status, e.Fields)
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.Status, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
