// Package store is a small key-value document store backed by a single JSON
// file. The history engine and UI treat document blobs as opaque; whatever
// the scene graph serializes is what gets persisted.
package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
)

// Store maps string keys to opaque JSON blobs and persists the whole table
// on every Set.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store at path, creating an empty one if the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}
	log.Printf("store: loaded %d entries from %s", len(s.data), path)
	return s, nil
}

// Get returns the blob stored under key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.data[key]
	return blob, ok
}

// Set stores the blob under key and writes the store to disk.
func (s *Store) Set(key string, blob json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = blob
	return s.write()
}

// Delete removes key and writes the store to disk. Deleting a missing key is
// not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.write()
}

func (s *Store) write() error {
	out, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}
