// Package store implements persistent build info storage as a flat JSON
// file under the project's .crab directory.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using one JSON file per project
// root. Files are loaded lazily on first access.
type Store struct {
	mu    sync.RWMutex
	cache map[string]map[string]domain.BuildInfo // root -> asset -> info
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{
		cache: make(map[string]map[string]domain.BuildInfo),
	}
}

// Get retrieves the build info for an asset under the given project root.
// Returns nil, nil if the asset has never been built.
func (s *Store) Get(root, asset string) (*domain.BuildInfo, error) {
	records, err := s.records(root)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := records[asset]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info for an asset under the given project root.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	records, err := s.records(root)
	if err != nil {
		return err
	}

	s.mu.Lock()
	records[info.Asset] = info
	s.mu.Unlock()

	return s.save(root)
}

// records returns the record map for a root, loading it from disk on first
// access.
func (s *Store) records(root string) (map[string]domain.BuildInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records, ok := s.cache[root]; ok {
		return records, nil
	}

	records := make(map[string]domain.BuildInfo)

	path := storePath(root)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project root
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
		}
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", path)
		}
	}

	s.cache[root] = records
	return records, nil
}

func (s *Store) save(root string) error {
	s.mu.RLock()
	records := s.cache[root]
	data, err := json.MarshalIndent(records, "", "  ")
	s.mu.RUnlock()

	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	path := storePath(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Store files are project metadata, not secrets
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	return nil
}

func storePath(root string) string {
	return filepath.Join(filepath.Clean(root), domain.DefaultBuildInfoPath())
}
