package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelve/internal/testsupport"
)

func TestStoreRecordAndRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	first := &Move{RunID: "run-1", Name: "photo.jpg", Category: "images", SourcePath: "/tmp/photo.jpg", DestPath: "/tmp/images/photo.jpg"}
	second := &Move{RunID: "run-1", Name: "notes.txt", Category: "documents", SourcePath: "/tmp/notes.txt", DestPath: "/tmp/documents/notes.txt"}

	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record first: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record second: %v", err)
	}
	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected assigned IDs")
	}
	if first.MovedAt.IsZero() {
		t.Fatal("expected MovedAt to be stamped")
	}

	moves, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[0].Name != "notes.txt" || moves[1].Name != "photo.jpg" {
		t.Fatalf("expected newest first, got %q then %q", moves[0].Name, moves[1].Name)
	}
	if moves[0].Category != "documents" {
		t.Fatalf("category = %q", moves[0].Category)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		mv := &Move{RunID: "run-1", Name: "file.txt", Category: "documents", MovedAt: time.Now().UTC()}
		if err := store.Record(ctx, mv); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	moves, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(moves))
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Record(context.Background(), &Move{RunID: "run-1", Name: "a.zip", Category: "archives"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if reopened.Path() != cfg.History.Path {
		t.Fatalf("Path() = %q, want %q", reopened.Path(), cfg.History.Path)
	}

	moves, err := reopened.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(moves) != 1 || moves[0].Name != "a.zip" {
		t.Fatalf("persisted move missing: %+v", moves)
	}
}

func TestStoreRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(cfg); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
