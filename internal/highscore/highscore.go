// Package highscore persists the best score between rounds as a single
// record keyed "high_score".
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store loads and saves the high score record.
// Load never needs to succeed for the game to run; callers treat a failed
// load as 0.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// record is the on-disk document.
type record struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps the high score in a small JSON document.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file and its directory are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored high score. A missing file is not an error and
// yields 0; unreadable or malformed content returns 0 with an error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("highscore: cannot parse %s: %w", s.path, err)
	}
	if r.HighScore < 0 {
		return 0, fmt.Errorf("highscore: negative score %d in %s", r.HighScore, s.path)
	}
	return r.HighScore, nil
}

// Save replaces the stored record with score.
// The write goes through a temporary file so a crash never leaves a
// truncated record behind.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("highscore: refusing to save negative score %d", score)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("highscore: cannot encode record: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("highscore: cannot write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("highscore: cannot write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore keeps the high score in memory. Useful for tests and for
// sessions that must not touch the disk.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore creates a store holding the given initial score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

// Load returns the held score.
func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

// Save replaces the held score.
func (s *MemoryStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = score
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
