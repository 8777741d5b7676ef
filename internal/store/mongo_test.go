package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-saas-backend/internal/config"
	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestNewConnectMongo_Unreachable(t *testing.T) {
	g, err := NewConnectMongo(context.Background(), config.Database{
		URL:            "mongodb://127.0.0.1:1/?directConnection=true",
		ConnectTimeout: 200 * time.Millisecond,
	}, logger.Nop())

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNewConnectMongo_MalformedURL(t *testing.T) {
	_, err := NewConnectMongo(context.Background(), config.Database{
		URL:            "mongodb://%zz",
		ConnectTimeout: 200 * time.Millisecond,
	}, logger.Nop())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestMongoDatabaseName(t *testing.T) {
	assert.Equal(t, "named", mongoDatabaseName(config.Database{Name: "named", URL: "mongodb://h/other"}))
	assert.Equal(t, "other", mongoDatabaseName(config.Database{URL: "mongodb://u:p@h:27017/other?authSource=admin"}))
	assert.Equal(t, defaultMongoDatabase, mongoDatabaseName(config.Database{URL: "mongodb://h:27017"}))
}

func TestMongoFilter_SortedKeys(t *testing.T) {
	got := mongoFilter(Filter{"b": "2", "a": "1"})
	assert.Equal(t, bson.D{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, got)
	assert.Empty(t, mongoFilter(nil))
}

func TestClassifyMongo(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	assert.NoError(t, classifyMongo(nil))
	assert.ErrorIs(t, classifyMongo(mongo.ErrNoDocuments), ErrNotFound)
	assert.ErrorIs(t, classifyMongo(dup), ErrDuplicateKey)
	assert.ErrorIs(t, classifyMongo(mongo.ErrClientDisconnected), ErrStoreUnavailable)
	assert.ErrorIs(t, classifyMongo(context.DeadlineExceeded), ErrStoreUnavailable)
	assert.ErrorIs(t, classifyMongo(errors.New("boom")), ErrExecutingQuery)
}

func TestIsMongoURL(t *testing.T) {
	assert.True(t, isMongoURL("mongodb://localhost"))
	assert.True(t, isMongoURL("mongodb+srv://cluster.example.net"))
	assert.False(t, isMongoURL("postgres://localhost"))
}
