// internal/app/store/fetchlog/store.go
package fetchlog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding fetch records.
const Collection = "chart_fetches"

// Entry records one chart data fetch made while loading the dashboard.
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`

	// LoadID ties together the fetches made for one dashboard load.
	LoadID   string `bson:"load_id" json:"load_id"`
	Chart    string `bson:"chart" json:"chart"`
	Endpoint string `bson:"endpoint" json:"endpoint"`

	OK          bool   `bson:"ok" json:"ok"`
	Status      int    `bson:"status,omitempty" json:"status,omitempty"`
	Error       string `bson:"error,omitempty" json:"error,omitempty"`
	ElapsedMS   int64  `bson:"elapsed_ms" json:"elapsed_ms"`
	ValuesCount int    `bson:"values_count" json:"values_count"`
}

// Filter narrows Recent queries.
type Filter struct {
	Chart        string
	FailuresOnly bool
	Limit        int64
}

// Store manages fetch records.
type Store struct {
	c *mongo.Collection
}

// New creates a new fetch log Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// EnsureIndexes creates the indexes used by Recent and CountFailures.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{
				{Key: "chart", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "ok", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "load_id", Value: 1}},
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Record stores a fetch entry, filling in ID and Timestamp when unset.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// Recent returns matching entries, newest first.
func (s *Store) Recent(ctx context.Context, f Filter) ([]Entry, error) {
	query := bson.M{}
	if f.Chart != "" {
		query["chart"] = f.Chart
	}
	if f.FailuresOnly {
		query["ok"] = false
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []Entry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByLoad returns every entry recorded for one dashboard load.
func (s *Store) ByLoad(ctx context.Context, loadID string) ([]Entry, error) {
	cur, err := s.c.Find(ctx, bson.M{"load_id": loadID}, options.Find().SetSort(bson.D{{Key: "chart", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []Entry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountFailures counts failed fetches at or after since.
func (s *Store) CountFailures(ctx context.Context, since time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"ok":        false,
		"timestamp": bson.M{"$gte": since},
	})
}
