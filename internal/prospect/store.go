package prospect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists a Document as pretty-printed JSON at a fixed path.
// One local operator at a time; there is no locking discipline.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the store document, failing over to an empty document when the
// backing file does not exist yet.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("prospect store absent, starting empty", zap.String("path", s.path))
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read prospect store: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse prospect store %s: %w", s.path, err)
	}
	if doc.Prospects == nil {
		doc.Prospects = []Record{}
	}
	return &doc, nil
}

// Save writes the whole document back, creating parent directories as needed.
// The write goes to a temp file first and is renamed into place so a crash
// mid-save cannot leave a truncated store behind.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prospect store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prospects-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write prospect store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace prospect store: %w", err)
	}

	s.log.Debug("prospect store saved",
		zap.String("path", s.path),
		zap.Int("prospects", len(doc.Prospects)))
	return nil
}
