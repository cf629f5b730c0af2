package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a string-keyed, string-valued persistent store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Local is a Store backed by go-cache and persisted to a GOB file.
// Every mutation is written through to the file. An empty filename keeps
// the store in memory only.
type Local struct {
	mu       sync.Mutex
	inner    *gocache.Cache
	filename string
}

// New creates an empty in-memory store.
func New() *Local {
	return &Local{inner: gocache.New(gocache.NoExpiration, 0)}
}

// Open loads a store from a GOB file. A missing or corrupt file yields an
// empty store bound to the same filename.
func Open(filename string) (*Local, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s := New()
			s.filename = filename
			return s, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	items := map[string]gocache.Item{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
		slog.Warn("State decode error, starting fresh", "file", filename, "err", err)
		s := New()
		s.filename = filename
		return s, nil
	}
	return &Local{
		inner:    gocache.NewFrom(gocache.NoExpiration, 0, items),
		filename: filename,
	}, nil
}

// Filename returns the backing file, or "" for a memory-only store.
func (s *Local) Filename() string {
	return s.filename
}

// Get retrieves a value by key. Non-string entries are reported as missing.
func (s *Local) Get(key string) (string, bool) {
	val, found := s.inner.Get(key)
	if !found {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value and persists the store.
func (s *Local) Set(key, value string) error {
	s.inner.Set(key, value, gocache.NoExpiration)
	return s.Save()
}

// Remove deletes a key and persists the store.
func (s *Local) Remove(key string) error {
	s.inner.Delete(key)
	return s.Save()
}

// Flush clears every key and persists the store.
func (s *Local) Flush() error {
	s.inner.Flush()
	return s.Save()
}

// Keys returns the number of stored keys.
func (s *Local) Keys() int {
	return s.inner.ItemCount()
}

// Save writes the store to its file. It is a no-op for memory-only stores.
func (s *Local) Save() error {
	if s.filename == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.inner.Items()); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.filename), 0700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return os.WriteFile(s.filename, buf.Bytes(), 0600)
}
