package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "snake_highscore.json"))

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing file should not fail, got %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "high score is 12"},
		{"wrong type", `{"high_score": "twelve"}`},
		{"negative", `{"high_score": -3}`},
		{"truncated", `{"high_sc`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snake_highscore.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			score, err := NewFileStore(path).Load()
			if err == nil {
				t.Error("Load() should report malformed content")
			}
			if score != 0 {
				t.Errorf("Load() = %d, expected 0 on malformed content", score)
			}
		})
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake_highscore.json")
	if err := os.WriteFile(path, []byte(`{"other": 5}`), 0o600); err != nil {
		t.Fatal(err)
	}

	score, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0 when key is absent", score)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snake_highscore.json")
	s := NewFileStore(path)

	if err := s.Save(4); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save(2); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Save is a full replace, not a max or an increment.
	if score != 2 {
		t.Errorf("Load() = %d, expected 2", score)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"high_score":2}` {
		t.Errorf("file content = %s", data)
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the record file, found %d entries", len(entries))
	}
}

func TestFileStoreSaveNegative(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs.json"))
	if err := s.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}

func TestFileStoreSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file
	s := NewFileStore(filepath.Join(blocker, "hs.json"))
	if err := s.Save(3); err == nil {
		t.Error("Save() under a regular file should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(7)
	if score, _ := s.Load(); score != 7 {
		t.Errorf("Load() = %d, expected 7", score)
	}
	s.Save(9)
	if score, _ := s.Load(); score != 9 {
		t.Errorf("Load() = %d, expected 9", score)
	}
	if s.Saves() != 1 {
		t.Errorf("Saves() = %d, expected 1", s.Saves())
	}
}
