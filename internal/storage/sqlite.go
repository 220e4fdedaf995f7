// Package storage provides SQLite-based persistence for finished snake rounds
// and keyed records such as the shared high score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// HighScoreKey is the records row holding the best score.
const HighScoreKey = "high_score"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	Score     int
	Length    int
	Ticks     uint64
	Reason    string // "wall", "self" or "no_room"
	Player    string // "local" or the SSH user
	CreatedAt time.Time
}

// Stats aggregates the round history.
type Stats struct {
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LongestLen int
	LastPlayed time.Time
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
	// SQLite has a single writer; SSH sessions share this handle
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);

		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
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

// RecordRound stores a finished round.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(r RoundRecord) (int64, error) {
	if r.Player == "" {
		r.Player = "local"
	}
	result, err := s.db.Exec(
		"INSERT INTO rounds (score, length, ticks, reason, player) VALUES (?, ?, ?, ?, ?)",
		r.Score, r.Length, int64(r.Ticks), r.Reason, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best N rounds ordered by score descending.
// Ties keep the earlier round first.
func (s *Store) TopScores(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, score, length, ticks, reason, player, created_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds retrieves the latest N rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT id, score, length, ticks, reason, player, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// AllRounds retrieves every recorded round ordered by score descending.
func (s *Store) AllRounds() ([]RoundRecord, error) {
	return s.queryRounds(
		`SELECT id, score, length, ticks, reason, player, created_at
		 FROM rounds
		 ORDER BY score DESC, id ASC`,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundRecord
	for rows.Next() {
		var e RoundRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Length, &ticks, &e.Reason, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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

// Stats retrieves aggregated statistics over all recorded rounds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(length), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.LongestLen, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRounds deletes the round history. Records are kept.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Record returns the value stored under key.
// The second result is false when the key has never been written.
func (s *Store) Record(key string) (int, bool, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read record %q: %w", key, err)
	}
	return value, true, nil
}

// RaiseRecord stores value under key unless a greater or equal value is
// already there. It reports whether the row changed.
func (s *Store) RaiseRecord(key string, value int) (bool, error) {
	result, err := s.db.Exec(
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value
		 WHERE excluded.value > records.value`,
		key, value,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot write record %q: %w", key, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot write record %q: %w", key, err)
	}
	return n > 0, nil
}

// HighScores returns a highscore.Store backed by the records row keyed
// HighScoreKey. Concurrent sessions only ever raise it.
func (s *Store) HighScores() highscore.Store {
	return recordStore{store: s, key: HighScoreKey}
}

type recordStore struct {
	store *Store
	key   string
}

func (r recordStore) Load() (int, error) {
	v, _, err := r.store.Record(r.key)
	return v, err
}

func (r recordStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}
	_, err := r.store.RaiseRecord(r.key, score)
	return err
}
