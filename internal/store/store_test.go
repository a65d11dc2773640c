package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='progress_records'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "progress_records" {
		t.Errorf("table name = %q, want 'progress_records'", name)
	}
}

func TestProgressGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec, err := repo.Get(context.Background(), "never-played")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for unknown level, got %+v", rec)
	}
}

func TestProgressSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Save(ctx, ProgressRecord{
		LevelID:        "level-1",
		Completed:      true,
		Attempts:       3,
		BestDurationMs: 4200,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := repo.Get(ctx, "level-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a record")
	}
	if !rec.Completed || rec.Attempts != 3 || rec.BestDurationMs != 4200 {
		t.Errorf("record = %+v", rec)
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, ProgressRecord{LevelID: "level-2", Attempts: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, ProgressRecord{
		LevelID: "level-2", Completed: true, Attempts: 2, BestDurationMs: 9000,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rec, err := repo.Get(ctx, "level-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Attempts != 2 || !rec.Completed || rec.BestDurationMs != 9000 {
		t.Errorf("record after upsert = %+v", rec)
	}

	// Only one row, not two.
	all, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("rows = %d, want 1", len(all))
	}
}

func TestProgressBestIsNullUntilCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// An uncompleted record carries no best duration even if one is set.
	if err := repo.Save(ctx, ProgressRecord{
		LevelID: "level-3", Attempts: 1, BestDurationMs: 1234,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := repo.Get(ctx, "level-3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.BestDurationMs != 0 {
		t.Errorf("best = %d for uncompleted level, want 0", rec.BestDurationMs)
	}
}

func TestProgressLoadOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, id := range []string{"level-b", "level-a", "level-c"} {
		if err := repo.Save(ctx, ProgressRecord{LevelID: id, Attempts: 1}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	all, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("rows = %d, want 3", len(all))
	}
	for i, want := range []string{"level-a", "level-b", "level-c"} {
		if all[i].LevelID != want {
			t.Errorf("row %d = %q, want %q", i, all[i].LevelID, want)
		}
	}
}
