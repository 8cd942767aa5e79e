// Package storage provides SQLite-based persistence for scores and
// resumable checkpoints. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/bdadmehr0/terminate/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-run record.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	Stage     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			stage INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			player TEXT PRIMARY KEY,
			stage INTEGER NOT NULL,
			position INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			boost_ticks INTEGER NOT NULL DEFAULT 0,
			stage_seed INTEGER NOT NULL,
			enemies TEXT NOT NULL DEFAULT '[]',
			boxes TEXT NOT NULL DEFAULT '[]',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run for the given player.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(player string, score, stage int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (player, score, stage) VALUES (?, ?, ?)",
		player, score, stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores across all players,
// ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, stage, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// PlayerScores retrieves the top N scores for one player.
func (s *Store) PlayerScores(player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, stage, created_at
		 FROM scores
		 WHERE player = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Stage, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score. Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated run statistics.
type Stats struct {
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestStage  int
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics across all recorded runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(stage), 0)
		 FROM scores`,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.BestStage)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// SaveCheckpoint persists the player's current run so it can be resumed
// later. A second checkpoint for the same player replaces the first.
func (s *Store) SaveCheckpoint(player string, save game.SaveState) error {
	enemies, err := json.Marshal(save.Enemies)
	if err != nil {
		return fmt.Errorf("storage: cannot encode enemies: %w", err)
	}
	boxes, err := json.Marshal(save.Boxes)
	if err != nil {
		return fmt.Errorf("storage: cannot encode boxes: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (player, stage, position, score, lives, boost_ticks, stage_seed, enemies, boxes, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
			stage = excluded.stage,
			position = excluded.position,
			score = excluded.score,
			lives = excluded.lives,
			boost_ticks = excluded.boost_ticks,
			stage_seed = excluded.stage_seed,
			enemies = excluded.enemies,
			boxes = excluded.boxes,
			updated_at = CURRENT_TIMESTAMP`,
		player, save.Stage, save.Position, save.Score, save.Lives,
		save.BoostTicks, save.StageSeed, string(enemies), string(boxes),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint retrieves the player's saved run.
// Returns nil with no error when no checkpoint exists.
func (s *Store) LoadCheckpoint(player string) (*game.SaveState, error) {
	var save game.SaveState
	var enemies, boxes string

	err := s.db.QueryRow(
		`SELECT stage, position, score, lives, boost_ticks, stage_seed, enemies, boxes
		 FROM saves
		 WHERE player = ?`,
		player,
	).Scan(
		&save.Stage,
		&save.Position,
		&save.Score,
		&save.Lives,
		&save.BoostTicks,
		&save.StageSeed,
		&enemies,
		&boxes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}

	if err := json.Unmarshal([]byte(enemies), &save.Enemies); err != nil {
		return nil, fmt.Errorf("storage: cannot decode enemies: %w", err)
	}
	if err := json.Unmarshal([]byte(boxes), &save.Boxes); err != nil {
		return nil, fmt.Errorf("storage: cannot decode boxes: %w", err)
	}

	return &save, nil
}

// HasCheckpoint reports whether the player has a saved run.
func (s *Store) HasCheckpoint(player string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM saves WHERE player = ?",
		player,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}
	return count > 0, nil
}

// DeleteCheckpoint removes the player's saved run. The checkpoint is
// dropped once the run it belongs to ends.
func (s *Store) DeleteCheckpoint(player string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot delete checkpoint: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
