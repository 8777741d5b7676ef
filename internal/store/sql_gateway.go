package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/internal/utils"
)

const documentsTable = "documents"

// sqlDialect renders the JSON expressions a backend needs. Field names reach
// it already checked by checkFilter and checkSortKey.
type sqlDialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	// fieldEquals returns a predicate comparing one top-level text field.
	fieldEquals func(field, value string) sq.Sqlizer
	// orderBy returns the ORDER BY expression and its args for key.
	orderBy func(key SortKey) (string, []any)
}

// sqlGateway keeps every collection in one "documents" table, each row
// holding a relaxed Extended JSON body.
type sqlGateway struct {
	db         *sql.DB
	dialect    sqlDialect
	classifier ErrorClassifier
	ids        *utils.UUIDGenerator
	database   string
	logger     *logger.Logger
}

func newSQLGateway(db *sql.DB, dialect sqlDialect, classifier ErrorClassifier, database string, log *logger.Logger) *sqlGateway {
	return &sqlGateway{
		db:         db,
		dialect:    dialect,
		classifier: classifier,
		ids:        utils.NewUUIDGenerator(),
		database:   database,
		logger:     log,
	}
}

func (g *sqlGateway) Collection(name string) Collection {
	return &sqlCollection{gateway: g, name: name}
}

func (g *sqlGateway) Probe(ctx context.Context) ProbeResult {
	result := ProbeResult{Backend: g.dialect.name, Database: g.database}

	query, args, err := sq.Select("DISTINCT collection").
		From(documentsTable).
		OrderBy("collection").
		Limit(MaxProbeCollections).
		PlaceholderFormat(g.dialect.placeholder).
		ToSql()
	if err != nil {
		result.State = ProbeDegraded
		result.Err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		return result
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		result.State = ProbeDegraded
		result.Err = g.classifier.Classify(err)
		return result
	}
	defer rows.Close()

	collections := make([]string, 0, MaxProbeCollections)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			result.State = ProbeDegraded
			result.Err = fmt.Errorf("%w: %w", ErrScanningRow, err)
			return result
		}
		collections = append(collections, name)
	}
	if err = rows.Err(); err != nil {
		result.State = ProbeDegraded
		result.Err = g.classifier.Classify(err)
		return result
	}

	result.State = ProbeHealthy
	result.Collections = collections
	return result
}

func (g *sqlGateway) Close(context.Context) error {
	g.logger.Debug().Str("backend", g.dialect.name).Msg("closing document store")
	return g.db.Close()
}

type sqlCollection struct {
	gateway *sqlGateway
	name    string
}

func (c *sqlCollection) InsertOne(ctx context.Context, doc any) (string, error) {
	log := logger.FromContext(ctx)

	ext, err := encodeExtJSON(doc)
	if err != nil {
		return "", err
	}

	id := c.gateway.ids.Generate()
	query, args, err := sq.Insert(documentsTable).
		Columns("id", "collection", "doc").
		Values(id, c.name, string(ext)).
		PlaceholderFormat(c.gateway.dialect.placeholder).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.gateway.db.ExecContext(ctx, query, args...); err != nil {
		err = c.gateway.classifier.Classify(err)
		log.Err(err).Str("func", "*sqlCollection.InsertOne").Str("collection", c.name).Msg("error inserting document")
		return "", err
	}

	return id, nil
}

func (c *sqlCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	query, args, err := c.selectDocuments(filter, FindOptions{Limit: 1})
	if err != nil {
		return err
	}

	var (
		id  string
		ext []byte
	)
	err = c.gateway.db.QueryRowContext(ctx, query, args...).Scan(&id, &ext)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return c.gateway.classifier.Classify(err)
	}

	return decodeExtJSON(id, ext, out)
}

func (c *sqlCollection) Find(ctx context.Context, filter Filter, opts FindOptions) (Cursor, error) {
	query, args, err := c.selectDocuments(filter, opts)
	if err != nil {
		return nil, err
	}

	rows, err := c.gateway.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, c.gateway.classifier.Classify(err)
	}

	return &sqlCursor{rows: rows, classifier: c.gateway.classifier}, nil
}

// selectDocuments builds the SELECT shared by FindOne and Find. Rows are
// ordered by the sort key, then by insertion order.
func (c *sqlCollection) selectDocuments(filter Filter, opts FindOptions) (string, []any, error) {
	if err := checkFilter(filter); err != nil {
		return "", nil, err
	}
	if err := checkSortKey(opts.Sort); err != nil {
		return "", nil, err
	}

	builder := sq.Select("id", "doc").
		From(documentsTable).
		Where(sq.Eq{"collection": c.name}).
		PlaceholderFormat(c.gateway.dialect.placeholder)

	// sorted for stable query text
	fields := make([]string, 0, len(filter))
	for field := range filter {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		builder = builder.Where(c.gateway.dialect.fieldEquals(field, filter[field].(string)))
	}

	if opts.Sort != nil {
		expr, args := c.gateway.dialect.orderBy(*opts.Sort)
		builder = builder.OrderByClause(expr, args...)
	}
	builder = builder.OrderBy("seq ASC")

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type sqlCursor struct {
	rows       *sql.Rows
	classifier ErrorClassifier
	done       bool
	err        error
	id         string
	ext        []byte
}

func (c *sqlCursor) Next(context.Context) bool {
	if c.done {
		return false
	}

	if !c.rows.Next() {
		c.finish(c.rows.Err())
		return false
	}

	if err := c.rows.Scan(&c.id, &c.ext); err != nil {
		c.finish(fmt.Errorf("%w: %w", ErrScanningRow, err))
		return false
	}
	return true
}

func (c *sqlCursor) finish(err error) {
	c.done = true
	if err != nil && c.err == nil {
		if !errors.Is(err, ErrScanningRow) {
			err = c.classifier.Classify(err)
		}
		c.err = err
	}
	c.ext = nil
	_ = c.rows.Close()
}

func (c *sqlCursor) Decode(out any) error {
	if c.ext == nil {
		return fmt.Errorf("%w: cursor is not positioned on a document", ErrDecodingDocument)
	}
	return decodeExtJSON(c.id, c.ext, out)
}

func (c *sqlCursor) Err() error {
	return c.err
}

func (c *sqlCursor) Close(context.Context) error {
	if c.done {
		return nil
	}
	c.done = true
	return c.rows.Close()
}
