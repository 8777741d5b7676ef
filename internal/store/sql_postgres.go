package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// postgresTimeExpr orders an Extended JSON date. Relaxed Extended JSON keeps
// dates in years 1970-9999 as {"$date": "<RFC 3339>"} and all others as
// {"$date": {"$numberLong": "<epoch millis>"}}. Each ? is the field name.
const postgresTimeExpr = "CASE jsonb_typeof(doc -> CAST(? AS text) -> '$date') " +
	"WHEN 'string' THEN (doc -> CAST(? AS text) ->> '$date')::timestamptz " +
	"WHEN 'object' THEN to_timestamp((doc -> CAST(? AS text) -> '$date' ->> '$numberLong')::bigint / 1000.0) END"

// postgresDialect queries the JSONB "doc" column.
var postgresDialect = sqlDialect{
	name:        "postgres",
	placeholder: sq.Dollar,
	fieldEquals: func(field, value string) sq.Sqlizer {
		return sq.Expr("doc ->> CAST(? AS text) = ?", field, value)
	},
	orderBy: func(key SortKey) (string, []any) {
		expr, args := "doc ->> CAST(? AS text)", []any{key.Field}
		if key.Kind == KindTime {
			expr, args = postgresTimeExpr, []any{key.Field, key.Field, key.Field}
		}
		if key.Direction == Descending {
			return expr + " DESC NULLS LAST", args
		}
		return expr + " ASC NULLS FIRST", args
	},
}

// NewConnectPostgres opens a PostgreSQL document store, checks it answers
// within cfg.ConnectTimeout and applies pending migrations.
func NewConnectPostgres(ctx context.Context, cfg config.Database, log *logger.Logger) (Gateway, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	// ping database
	if err = conn.PingContext(connectCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = migrations.Migrate(connectCtx, conn, migrations.Postgres); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error migrating database")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newSQLGateway(conn, postgresDialect, NewPostgresErrorClassifier(), postgresDatabaseName(cfg), log), nil
}

// postgresDatabaseName prefers DATABASE_NAME and falls back to the URL path.
func postgresDatabaseName(cfg config.Database) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
