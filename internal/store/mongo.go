package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// defaultMongoDatabase is used when neither DATABASE_NAME nor the URL path
// names a database.
const defaultMongoDatabase = "saas"

type mongoGateway struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings it within cfg.ConnectTimeout
// and ensures the unique index on user emails.
func NewConnectMongo(ctx context.Context, cfg config.Database, log *logger.Logger) (Gateway, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetConnectTimeout(cfg.ConnectTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err = client.Ping(connectCtx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	name := mongoDatabaseName(cfg)
	g := &mongoGateway{
		client:   client,
		database: client.Database(name),
		logger:   log,
	}

	// a failed index only weakens the duplicate check; the store is usable
	_, err = g.database.Collection(models.CollectionUsers).Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "NewConnectMongo").Msg("error creating unique email index")
	}

	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to database successfully")
	return g, nil
}

func mongoDatabaseName(cfg config.Database) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	if u, err := url.Parse(cfg.URL); err == nil {
		if name := strings.TrimPrefix(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultMongoDatabase
}

func isMongoURL(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

func (g *mongoGateway) Collection(name string) Collection {
	return &mongoCollection{coll: g.database.Collection(name)}
}

func (g *mongoGateway) Probe(ctx context.Context) ProbeResult {
	result := ProbeResult{Backend: "mongodb", Database: g.database.Name()}

	names, err := g.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		result.State = ProbeDegraded
		result.Err = classifyMongo(err)
		return result
	}

	slices.Sort(names)
	if len(names) > MaxProbeCollections {
		names = names[:MaxProbeCollections]
	}

	result.State = ProbeHealthy
	result.Collections = names
	return result
}

func (g *mongoGateway) Close(ctx context.Context) error {
	g.logger.Debug().Str("backend", "mongodb").Msg("closing document store")
	return g.client.Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (string, error) {
	log := logger.FromContext(ctx)

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		err = classifyMongo(err)
		log.Err(err).Str("func", "*mongoCollection.InsertOne").Str("collection", c.coll.Name()).Msg("error inserting document")
		return "", err
	}

	return idString(res.InsertedID), nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	if err := checkFilter(filter); err != nil {
		return err
	}

	raw, err := c.coll.FindOne(ctx, mongoFilter(filter)).Raw()
	if err != nil {
		return classifyMongo(err)
	}

	return decodeRaw(raw, out)
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, opts FindOptions) (Cursor, error) {
	if err := checkFilter(filter); err != nil {
		return nil, err
	}
	if err := checkSortKey(opts.Sort); err != nil {
		return nil, err
	}

	sort := bson.D{}
	if opts.Sort != nil {
		sort = append(sort, bson.E{Key: opts.Sort.Field, Value: int(opts.Sort.Direction)})
	}
	sort = append(sort, bson.E{Key: idField, Value: 1})

	findOpts := options.Find().SetSort(sort)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := c.coll.Find(ctx, mongoFilter(filter), findOpts)
	if err != nil {
		return nil, classifyMongo(err)
	}

	return &mongoCursor{cur: cur}, nil
}

func mongoFilter(filter Filter) bson.D {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, bson.E{Key: k, Value: filter[k]})
	}
	return d
}

type mongoCursor struct {
	cur  *mongo.Cursor
	done bool
	err  error
}

func (c *mongoCursor) Next(ctx context.Context) bool {
	if c.done {
		return false
	}
	if c.cur.Next(ctx) {
		return true
	}

	c.done = true
	if err := c.cur.Err(); err != nil {
		c.err = classifyMongo(err)
	}
	_ = c.cur.Close(context.WithoutCancel(ctx))
	return false
}

func (c *mongoCursor) Decode(out any) error {
	if c.done || c.cur.Current == nil {
		return fmt.Errorf("%w: cursor is not positioned on a document", ErrDecodingDocument)
	}
	return decodeRaw(c.cur.Current, out)
}

func (c *mongoCursor) Err() error {
	return c.err
}

func (c *mongoCursor) Close(ctx context.Context) error {
	if c.done {
		return nil
	}
	c.done = true
	return c.cur.Close(ctx)
}

// classifyMongo maps driver errors to the package sentinels.
func classifyMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err),
		errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
