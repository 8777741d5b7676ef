package store

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier maps a driver error to one of the package sentinels, so
// that callers never see raw driver errors.
type ErrorClassifier interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier].
//
//   - Class 23505 unique_violation → [ErrDuplicateKey]
//   - Class 08 connection exceptions and 57P03 → [ErrStoreUnavailable]
//   - anything else → [ErrExecutingQuery]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)

		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.SQLClientUnableToEstablishSQLConnection,
			pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	if isConnectionLost(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// SQLiteErrorClassifier implements [ErrorClassifier] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier]. SQLITE_CONSTRAINT_UNIQUE maps to
// [ErrDuplicateKey]; a database that cannot be opened maps to
// [ErrStoreUnavailable].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch {
		case liteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %s", ErrDuplicateKey, liteErr.Error())
		case liteErr.Code == sqlite3.ErrCantOpen, liteErr.Code == sqlite3.ErrNotADB:
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	if isConnectionLost(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func isConnectionLost(err error) bool {
	return errors.Is(err, driver.ErrBadConn)
}
