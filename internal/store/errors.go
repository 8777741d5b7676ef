package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by gateways and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned by every operation of a gateway that
	// could not connect at startup, and by live gateways when the store
	// stops answering.
	ErrStoreUnavailable = errors.New("document store is unavailable")

	// ErrStoreNotConfigured is the reason of the degraded gateway when no
	// DATABASE_URL was given. It matches ErrStoreUnavailable.
	ErrStoreNotConfigured = fmt.Errorf("DATABASE_URL is not set: %w", ErrStoreUnavailable)

	// ErrNotFound is returned by FindOne when no document matches.
	ErrNotFound = errors.New("document was not found")

	// ErrDuplicateKey is returned when a unique index rejects a document,
	// e.g. a second user with the same email.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnsupportedDSN is returned for a DATABASE_URL whose scheme does not
	// select any backend.
	ErrUnsupportedDSN = errors.New("unsupported database url")

	// ErrUnsupportedFilter is returned for filters or sort keys on fields
	// that are not plain top-level names, or with non-string values.
	ErrUnsupportedFilter = errors.New("unsupported filter")
)

// Low-level operation errors. These are returned (or wrapped) when a
// backend operation fails before any domain logic can be applied.
var (
	// ErrEncodingDocument is returned when a document cannot be encoded.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into the caller's value.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query against the store fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
