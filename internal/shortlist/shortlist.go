// Package shortlist persists the user's shortlisted posting ids. The file
// format is a plain JSON array of ids, the same shape the original page kept
// under its local-storage key, so the two stay interchangeable.
package shortlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store is a mutex-guarded id set backed by a JSON file. Every mutation is
// written through immediately; readers get snapshots, never the live set.
type Store struct {
	mu   sync.Mutex
	path string
	ids  map[string]bool
}

// Open loads the shortlist at path, starting empty when the file is missing
// or unreadable. A corrupt file is treated as empty rather than fatal; the
// next save rewrites it.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("shortlist: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("shortlist: create state dir: %w", err)
	}

	s := &Store{path: path, ids: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("shortlist: read %s: %w", path, err)
	}

	var loaded []string
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Corrupt state file: start fresh.
		return s, nil
	}
	for _, id := range loaded {
		if id != "" {
			s.ids[id] = true
		}
	}
	return s, nil
}

// Toggle flips membership for id, persists, and reports the new state.
func (s *Store) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
	if err := s.save(); err != nil {
		return false, err
	}
	return s.ids[id], nil
}

// Contains reports whether id is shortlisted.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

// IDs returns the shortlisted ids, sorted.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns a copy of the set for use as a filter input.
func (s *Store) Snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out
}

// Len reports how many ids are shortlisted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Clear empties the shortlist and persists the empty set.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[string]bool)
	return s.save()
}

// save writes the sorted id array. Callers hold the lock.
func (s *Store) save() error {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("shortlist: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("shortlist: write %s: %w", s.path, err)
	}
	return nil
}
