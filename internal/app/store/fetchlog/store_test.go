package fetchlog_test

import (
	"testing"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"github.com/dalemusser/ticketboard/internal/testutil"
)

func TestStore_Record(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Record(ctx, fetchlog.Entry{
		LoadID:      "load-1",
		Chart:       "priority",
		Endpoint:    "/ticket_data/",
		OK:          true,
		Status:      200,
		ValuesCount: 4,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Recent(ctx, fetchlog.Filter{})
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be auto-set")
	}
	if entries[0].Chart != "priority" {
		t.Errorf("chart: got %q, want priority", entries[0].Chart)
	}
}

func TestStore_Recent_NewestFirstAndLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().Add(-time.Hour)
	fixtures.CreateFetch(ctx, "a", "priority", "/ticket_data/", "", base)
	fixtures.CreateFetch(ctx, "b", "type", "/type_data/", "", base.Add(time.Minute))
	fixtures.CreateFetch(ctx, "c", "status", "/status_data/", "", base.Add(2*time.Minute))

	entries, err := store.Recent(ctx, fetchlog.Filter{Limit: 2})
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].LoadID != "c" || entries[1].LoadID != "b" {
		t.Errorf("order: got %q, %q; want c, b", entries[0].LoadID, entries[1].LoadID)
	}
}

func TestStore_Recent_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now()
	fixtures.CreateFetch(ctx, "a", "priority", "/ticket_data/", "", now)
	fixtures.CreateFetch(ctx, "a", "type", "/type_data/", "unexpected status: 500", now)
	fixtures.CreateFetch(ctx, "b", "type", "/type_data/", "", now)

	failed, err := store.Recent(ctx, fetchlog.Filter{FailuresOnly: true})
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(failed) != 1 || failed[0].Chart != "type" || failed[0].OK {
		t.Errorf("failures only: got %+v", failed)
	}

	typ, err := store.Recent(ctx, fetchlog.Filter{Chart: "type"})
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(typ) != 2 {
		t.Errorf("chart filter: expected 2 entries, got %d", len(typ))
	}
}

func TestStore_ByLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now()
	fixtures.CreateFetch(ctx, "load-x", "type", "/type_data/", "", now)
	fixtures.CreateFetch(ctx, "load-x", "priority", "/ticket_data/", "", now)
	fixtures.CreateFetch(ctx, "load-y", "status", "/status_data/", "", now)

	entries, err := store.ByLoad(ctx, "load-x")
	if err != nil {
		t.Fatalf("ByLoad failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Chart != "priority" || entries[1].Chart != "type" {
		t.Errorf("order: got %q, %q", entries[0].Chart, entries[1].Chart)
	}
}

func TestStore_CountFailures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now()
	fixtures.CreateFetch(ctx, "old", "type", "/type_data/", "boom", now.Add(-2*time.Hour))
	fixtures.CreateFetch(ctx, "new", "type", "/type_data/", "boom", now)
	fixtures.CreateFetch(ctx, "new", "priority", "/ticket_data/", "", now)

	n, err := store.CountFailures(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountFailures failed: %v", err)
	}
	if n != 1 {
		t.Errorf("failures: got %d, want 1", n)
	}
}

func TestStore_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// Idempotent.
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("second EnsureIndexes failed: %v", err)
	}
}
