package dataset

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maxpoletto/newsy/internal/domain"
)

// FileStore persists the dataset artifact: an indented JSON file for
// development plus a compact gzip variant for production serving.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore targets an output directory, created on first save.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// Save writes <name> and <name>.gz under the output directory.
func (s *FileStore) Save(data domain.Dataset, name string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	jsonPath := filepath.Join(s.dir, name)
	gzPath := jsonPath + ".gz"

	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(jsonPath, pretty, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	if err := s.writeGzip(gzPath, data); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("saved dataset", "json", jsonPath, "gzip", gzPath)
	}
	return nil
}

func (s *FileStore) writeGzip(path string, data domain.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(data); err != nil {
		_ = zw.Close()
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close gzip %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
