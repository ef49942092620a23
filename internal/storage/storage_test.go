package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveExport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	path, err := s.SaveExport([]byte("deck bytes"), "q3_review.pptx")
	if err != nil {
		t.Fatalf("SaveExport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved export: %v", err)
	}
	if string(data) != "deck bytes" {
		t.Errorf("saved content = %q", data)
	}
}

func TestSaveExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	s := NewLocalStorage(dir)

	if _, err := s.SaveExport([]byte("x"), "deck.pdf"); err != nil {
		t.Fatalf("SaveExport() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestListExports(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	for _, name := range []string{"a.pptx", "b.pdf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	exports, err := s.ListExports()
	if err != nil {
		t.Fatalf("ListExports() error = %v", err)
	}
	if len(exports) != 2 {
		t.Errorf("ListExports() = %v, want 2 entries", exports)
	}
}

func TestListExportsMissingDir(t *testing.T) {
	s := NewLocalStorage(filepath.Join(t.TempDir(), "absent"))

	exports, err := s.ListExports()
	if err != nil {
		t.Fatalf("ListExports() error = %v", err)
	}
	if exports != nil {
		t.Errorf("ListExports() = %v, want nil for missing dir", exports)
	}
}

func TestRemoveExports(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	for _, name := range []string{"a.pptx", "b.pdf", "keep.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := s.RemoveExports()
	if err != nil {
		t.Fatalf("RemoveExports() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("RemoveExports() = %d, want 2", removed)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.txt")); err != nil {
		t.Error("RemoveExports() should leave non-export files alone")
	}
}
