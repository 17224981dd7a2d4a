// Package cas implements the build journal store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is the journal location relative to the working directory.
const DefaultPath = ".rmake/journal.json"

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file. The file is
// read on first access so that a damaged journal only affects the commands
// that need it.
type Store struct {
	path    string
	mu      sync.RWMutex
	once    sync.Once
	loadErr error
	cache   map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
}

// Path returns the location of the journal file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureLoaded() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loadErr = s.load()
	})
	return s.loadErr
}

func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	return nil
}

// save must be called with the write lock held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the build info for a given target name.
func (s *Store) Get(target string) (*domain.BuildInfo, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info, replacing any earlier record for the same target.
func (s *Store) Put(info domain.BuildInfo) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[info.Target] = info
	return s.save()
}

// List returns every stored record ordered by target name.
func (s *Store) List() ([]domain.BuildInfo, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := slices.Collect(maps.Values(s.cache))
	slices.SortFunc(infos, func(a, b domain.BuildInfo) int {
		return strings.Compare(a.Target, b.Target)
	})
	return infos, nil
}
