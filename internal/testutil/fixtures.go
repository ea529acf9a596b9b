package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateFetch inserts a fetch log entry for chart at the given time.
// A non-empty errMsg marks the fetch as failed.
func (f *Fixtures) CreateFetch(ctx context.Context, loadID, chart, endpoint, errMsg string, at time.Time) fetchlog.Entry {
	f.t.Helper()

	e := fetchlog.Entry{
		ID:        primitive.NewObjectID(),
		Timestamp: at.UTC(),
		LoadID:    loadID,
		Chart:     chart,
		Endpoint:  endpoint,
		OK:        errMsg == "",
		Error:     errMsg,
		ElapsedMS: 12,
	}
	if e.OK {
		e.Status = 200
		e.ValuesCount = 4
	}

	if _, err := f.db.Collection(fetchlog.Collection).InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test fetch entry: %v", err)
	}
	return e
}
