// Package cas implements content-addressed storage of resolution records.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResolutionStore = (*Store)(nil)

// Store implements ports.ResolutionStore with one JSON file per application,
// named by the SHA-256 of its runtime config path.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a ResolutionStore rooted at dir. The directory is created
// on the first Put.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

func (s *Store) pathFor(configPath string) string {
	sum := sha256.Sum256([]byte(configPath))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}

// Get retrieves the record for a runtime config path.
func (s *Store) Get(configPath string) (*domain.ResolutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.pathFor(configPath)
	//nolint:gosec // Path is derived from a hash under the store directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read resolution record"), "path", path)
	}

	var record domain.ResolutionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal resolution record"), "path", path)
	}
	return &record, nil
}

// Put stores the record, replacing any earlier one for the same config path.
func (s *Store) Put(record domain.ResolutionRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal resolution record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create resolution store"), "path", s.dir)
	}

	path := s.pathFor(record.ConfigPath)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write resolution record"), "path", path)
	}
	return nil
}
