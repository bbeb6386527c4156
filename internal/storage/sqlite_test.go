package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "records.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestTopRunsOrder(t *testing.T) {
	store := openTemp(t)
	runs := []RunRecord{
		{Seed: 1, BestWave: 3, Kills: 20},
		{Seed: 2, BestWave: 7, Kills: 55, BossKills: 6, Level: 9},
		{Seed: 3, BestWave: 3, Kills: 31},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Seed != 2 || top[1].Seed != 3 || top[2].Seed != 1 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].BossKills != 6 || top[0].Level != 9 {
		t.Errorf("Fields not round-tripped: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not filled")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTemp(t)
	for i := 1; i <= 5; i++ {
		store.SaveRun(RunRecord{Seed: int64(i), BestWave: i})
	}
	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].BestWave != 5 || top[1].BestWave != 4 {
		t.Errorf("TopRuns(2) = %+v", top)
	}
}

func TestBestWave(t *testing.T) {
	store := openTemp(t)
	best, err := store.BestWave()
	if err != nil {
		t.Fatalf("BestWave() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no runs, got %d", best)
	}

	store.SaveRun(RunRecord{BestWave: 4})
	store.SaveRun(RunRecord{BestWave: 9})
	if best, _ = store.BestWave(); best != 9 {
		t.Errorf("Expected best wave 9, got %d", best)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if top, _ := store.TopRuns(10); len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}
