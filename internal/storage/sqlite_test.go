package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bdadmehr0/terminate/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("alice", 100, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("alice", 50, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("bob", 200, 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending across players
	if scores[0].Score != 200 || scores[0].Player != "bob" {
		t.Errorf("Expected bob's 200 first, got %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Stage != 3 {
		t.Errorf("Expected stage 3 on the top entry, got %d", scores[0].Stage)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("alice", (i+1)*100, 1)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100, 1)
	store.SaveScore("alice", 300, 2)
	store.SaveScore("bob", 999, 5)

	scores, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}

	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for alice, got %d", len(scores))
	}
	for _, e := range scores {
		if e.Player != "alice" {
			t.Errorf("Got entry for %q, expected alice", e.Player)
		}
	}
	if scores[0].Score != 300 {
		t.Errorf("Expected alice's best first, got %d", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 on empty table, got %d", high)
	}

	store.SaveScore("alice", 100, 1)
	store.SaveScore("bob", 300, 2)
	store.SaveScore("alice", 200, 2)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100, 1)
	store.SaveScore("bob", 200, 1)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100, 2)
	store.SaveScore("alice", 300, 4)
	store.SaveScore("bob", 200, 3)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.BestStage != 4 {
		t.Errorf("BestStage = %d, expected 4", stats.BestStage)
	}
}

func TestStoreCheckpointRoundTrip(t *testing.T) {
	store := openTestStore(t)

	save := game.SaveState{
		Stage:      3,
		Position:   17,
		Score:      450,
		Lives:      2,
		BoostTicks: 88,
		StageSeed:  987654321,
		Enemies:    []int{20, 35, 60},
		Boxes:      []int{12},
	}

	if err := store.SaveCheckpoint("alice", save); err != nil {
		t.Fatalf("SaveCheckpoint() failed: %v", err)
	}

	loaded, err := store.LoadCheckpoint("alice")
	if err != nil {
		t.Fatalf("LoadCheckpoint() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a checkpoint, got nil")
	}

	if loaded.Stage != 3 || loaded.Position != 17 || loaded.Score != 450 ||
		loaded.Lives != 2 || loaded.BoostTicks != 88 || loaded.StageSeed != 987654321 {
		t.Errorf("Checkpoint fields mismatch: %+v", loaded)
	}
	if len(loaded.Enemies) != 3 || loaded.Enemies[1] != 35 {
		t.Errorf("Enemies = %v, expected [20 35 60]", loaded.Enemies)
	}
	if len(loaded.Boxes) != 1 || loaded.Boxes[0] != 12 {
		t.Errorf("Boxes = %v, expected [12]", loaded.Boxes)
	}
}

func TestStoreCheckpointUpsert(t *testing.T) {
	store := openTestStore(t)

	store.SaveCheckpoint("alice", game.SaveState{Stage: 1, Score: 10, Lives: 3, StageSeed: 1})
	store.SaveCheckpoint("alice", game.SaveState{Stage: 2, Score: 99, Lives: 2, StageSeed: 2})

	loaded, err := store.LoadCheckpoint("alice")
	if err != nil {
		t.Fatalf("LoadCheckpoint() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a checkpoint, got nil")
	}
	if loaded.Stage != 2 || loaded.Score != 99 {
		t.Errorf("Second save should replace the first, got %+v", loaded)
	}
}

func TestStoreCheckpointMissing(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.LoadCheckpoint("nobody")
	if err != nil {
		t.Fatalf("LoadCheckpoint() failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for missing checkpoint, got %+v", loaded)
	}

	has, err := store.HasCheckpoint("nobody")
	if err != nil {
		t.Fatalf("HasCheckpoint() failed: %v", err)
	}
	if has {
		t.Error("HasCheckpoint should be false for unknown player")
	}
}

func TestStoreCheckpointDelete(t *testing.T) {
	store := openTestStore(t)

	store.SaveCheckpoint("alice", game.SaveState{Stage: 1, Lives: 3, StageSeed: 5})
	store.SaveCheckpoint("bob", game.SaveState{Stage: 2, Lives: 1, StageSeed: 6})

	if err := store.DeleteCheckpoint("alice"); err != nil {
		t.Fatalf("DeleteCheckpoint() failed: %v", err)
	}

	has, _ := store.HasCheckpoint("alice")
	if has {
		t.Error("Alice's checkpoint should be gone")
	}

	has, _ = store.HasCheckpoint("bob")
	if !has {
		t.Error("Bob's checkpoint should survive deleting alice's")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on demand
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
