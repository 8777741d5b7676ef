package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/migrations"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteBusyTimeoutMillis = 5000

// sqliteTimeExpr turns an Extended JSON date into a Julian day number, from
// either its RFC 3339 text or its {"$numberLong": "<epoch millis>"} form.
// 2440587.5 is the Julian day of the Unix epoch.
const sqliteTimeExpr = "CASE json_type(doc, ?) " +
	"WHEN 'text' THEN julianday(json_extract(doc, ?)) " +
	"WHEN 'object' THEN 2440587.5 + CAST(json_extract(doc, ?) AS INTEGER) / 86400000.0 END"

// sqliteDialect queries the JSON text "doc" column with json_extract.
// SQLite orders NULL lowest, which is the order the gateway promises.
var sqliteDialect = sqlDialect{
	name:        "sqlite",
	placeholder: sq.Question,
	fieldEquals: func(field, value string) sq.Sqlizer {
		return sq.Expr("json_extract(doc, ?) = ?", "$."+field, value)
	},
	orderBy: func(key SortKey) (string, []any) {
		expr, args := "json_extract(doc, ?)", []any{"$." + key.Field}
		if key.Kind == KindTime {
			date := "$." + key.Field + `."$date"`
			expr, args = sqliteTimeExpr, []any{date, date, date + `."$numberLong"`}
		}
		if key.Direction == Descending {
			return expr + " DESC", args
		}
		return expr + " ASC", args
	},
}

// NewConnectSQLite opens (creating if needed) a SQLite document store and
// applies pending migrations.
func NewConnectSQLite(ctx context.Context, cfg config.Database, log *logger.Logger) (Gateway, error) {
	path, err := sqlitePath(cfg.URL)
	if err != nil {
		return nil, err
	}

	// db will be in file
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=%d", path, sqliteBusyTimeoutMillis))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening connection to DB")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	// ping database
	if err = conn.PingContext(connectCtx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = migrations.Migrate(connectCtx, conn, migrations.SQLite); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error migrating database")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newSQLGateway(conn, sqliteDialect, NewSQLiteErrorClassifier(), path, log), nil
}

// isSQLiteURL reports whether dsn selects the SQLite backend:
// sqlite://<path>, file:<path> or a bare path ending in .db.
func isSQLiteURL(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") ||
		strings.HasPrefix(dsn, "file:") ||
		strings.HasSuffix(dsn, ".db")
}

// sqlitePath extracts the database file path from dsn, dropping any query.
func sqlitePath(dsn string) (string, error) {
	var path string
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		path = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		path = strings.TrimPrefix(strings.TrimPrefix(dsn, "file:"), "//")
	case strings.HasSuffix(dsn, ".db"):
		path = dsn
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}

	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	if path == "" || path == ":memory:" {
		return "", fmt.Errorf("%w: sqlite needs a file path, got %q", ErrUnsupportedDSN, dsn)
	}
	return path, nil
}
