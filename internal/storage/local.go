// Package storage persists exported presentation documents, locally and
// optionally in a GCS bucket. Generated decks themselves are never stored.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var exportExtensions = map[string]bool{
	".pptx": true,
	".pdf":  true,
}

type LocalStorage struct {
	outputDir string
}

func NewLocalStorage(outputDir string) *LocalStorage {
	return &LocalStorage{outputDir: outputDir}
}

func (s *LocalStorage) SaveExport(data []byte, filename string) (string, error) {
	if err := s.EnsureDirectory(); err != nil {
		return "", err
	}

	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

func (s *LocalStorage) ListExports() ([]string, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	var exports []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if exportExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			exports = append(exports, filepath.Join(s.outputDir, entry.Name()))
		}
	}

	return exports, nil
}

func (s *LocalStorage) RemoveExports() (int, error) {
	exports, err := s.ListExports()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range exports {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}

	return removed, nil
}

func (s *LocalStorage) EnsureDirectory() error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
