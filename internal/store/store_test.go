package store

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"
	"time"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	s.now = func() time.Time { return now }
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	migrations := fstest.MapFS{
		"m/001_create.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"m/README.md":      &fstest.MapFile{Data: []byte("not a migration")},
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(ctx, db, migrations, "m"); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("migration rows = %d, want 1", n)
	}
	if _, err := db.Exec("INSERT INTO items(id) VALUES ('a')"); err != nil {
		t.Fatalf("items table missing: %v", err)
	}
}

func TestExtractUp(t *testing.T) {
	got := extractUp("-- +migrate Up\nCREATE TABLE a(x);\n-- +migrate Down\nDROP TABLE a;")
	if got != "\nCREATE TABLE a(x);\n" {
		t.Fatalf("up = %q", got)
	}
	if got := extractUp("CREATE TABLE b(x);"); got != "CREATE TABLE b(x);" {
		t.Fatalf("plain = %q", got)
	}
}

func TestVisitorStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	visits := []Visitor{
		{HashedIP: "aa", Path: "/", Lang: "en", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aa", Path: "/work-content", Lang: "en", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bb", Path: "/", Lang: "pt", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "cc", Path: "/", Lang: "pt", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		if err := s.RecordVisit(ctx, v); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if _, err := s.SaveMessage(ctx, Message{Name: "Ana", Email: "ana@example.com", Body: "hi"}); err != nil {
		t.Fatalf("save message: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVisitors != 4 || stats.UniqueVisitors != 3 {
		t.Fatalf("totals = %d/%d", stats.TotalVisitors, stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 || stats.VisitorsThisWeek != 3 {
		t.Fatalf("today/week = %d/%d", stats.VisitorsToday, stats.VisitorsThisWeek)
	}
	if stats.TotalMessages != 1 || stats.UndeliveredMessages != 1 {
		t.Fatalf("messages = %d/%d", stats.TotalMessages, stats.UndeliveredMessages)
	}
	if len(stats.TopPaths) == 0 || stats.TopPaths[0].Path != "/" || stats.TopPaths[0].Visits != 3 {
		t.Fatalf("top paths = %+v", stats.TopPaths)
	}
	if len(stats.RecentVisitors) != 4 || stats.RecentVisitors[0].Path != "/" || stats.RecentVisitors[0].HashedIP != "aa" {
		t.Fatalf("recent = %+v", stats.RecentVisitors)
	}
	if !stats.RecentVisitors[0].Timestamp.Equal(now.Add(-time.Hour)) {
		t.Fatalf("timestamp = %v", stats.RecentVisitors[0].Timestamp)
	}
}

func TestCleanupVisitors(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	_ = s.RecordVisit(ctx, Visitor{HashedIP: "old", Timestamp: now.Add(-Retention - time.Hour)})
	_ = s.RecordVisit(ctx, Visitor{HashedIP: "new", Timestamp: now.Add(-time.Hour)})
	_ = s.RecordVisit(ctx, Visitor{HashedIP: "defaulted"})

	removed, err := s.CleanupVisitors(ctx)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	left, err := s.RecentVisitors(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(left) != 2 {
		t.Fatalf("left = %d, want 2", len(left))
	}
}

func TestMessages(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	id, err := s.SaveMessage(ctx, Message{Name: "Ana", Email: "ana@example.com", Body: "olá", Lang: "pt"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.MarkDelivered(ctx, id); err != nil {
		t.Fatalf("mark: %v", err)
	}
	msgs, err := s.Messages(ctx, 10)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 1 || !msgs[0].Delivered || msgs[0].Body != "olá" || !msgs[0].CreatedAt.Equal(now) {
		t.Fatalf("messages = %+v", msgs)
	}
}
