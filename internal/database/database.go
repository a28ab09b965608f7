package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stakehall/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by every Store operation when no
// database connection is configured. Callers on public read paths
// must treat it as recoverable (empty result / ack), all others map
// it to a 503.
var ErrUnavailable = errors.New("database not configured")

const connectTimeout = 10 * time.Second

// Store wraps the document database. It is constructed once at
// startup and passed by reference into every component that needs
// it; an unconfigured deployment gets a degraded Store whose
// operations fail with ErrUnavailable instead of a nil handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the Store. Missing configuration is not fatal: the
// process still serves its public surface in degraded mode.
func Connect(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) *Store {
	if !cfg.DatabaseConfigured() {
		logger.Warn("database not configured, running in degraded mode",
			zap.Bool("url_set", cfg.Database.URL != ""),
			zap.Bool("name_set", cfg.Database.Name != ""),
		)
		return &Store{}
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URL))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		logger.Warn("database unreachable, running in degraded mode", zap.Error(err))
		return &Store{}
	}

	logger.Info("database connected", zap.String("name", cfg.Database.Name))
	return &Store{client: client, db: client.Database(cfg.Database.Name)}
}

// Available reports whether a live database handle exists.
func (s *Store) Available() bool { return s.db != nil }

// Name returns the database name, or "" in degraded mode.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Collection exposes the direct query path used by listing endpoints
// that need sort/skip/limit together.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.Collection(name), nil
}

// Create inserts a single document, stamping created_at and
// updated_at with the current UTC time, and returns the hex id.
func (s *Store) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}

	raw, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	raw["created_at"] = now
	raw["updated_at"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return objectIDHex(res.InsertedID), nil
}

// Find decodes documents matching filter into dest (a pointer to a
// slice), capped at limit when limit > 0, in storage order.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64, dest interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

// FindOne returns the first document matching filter, or mongo's
// ErrNoDocuments.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(collection).CountDocuments(ctx, filter)
}

// UpdateOne applies set to the first document matching filter,
// stamping updated_at, and returns the matched count.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}
	return res.MatchedCount, nil
}

// ListCollectionNames is the connectivity probe behind GET /test.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Disconnect tears down the client on shutdown.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func toDocument(doc interface{}) (bson.M, error) {
	if m, ok := doc.(bson.M); ok {
		out := make(bson.M, len(m)+2)
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out bson.M
	if err := bson.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	// a zero ObjectID from an embedded Base must not be inserted
	if id, ok := out["_id"]; ok {
		if oid, isOID := id.(interface{ IsZero() bool }); isOID && oid.IsZero() {
			delete(out, "_id")
		}
	}
	return out, nil
}

func objectIDHex(id interface{}) string {
	if oid, ok := id.(interface{ Hex() string }); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
