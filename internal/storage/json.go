package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// LoadJSON decodes the value stored under key into a T. A missing key,
// malformed JSON, or a value of the wrong shape all return empty.
func LoadJSON[T any](s Store, key string, empty T) T {
	raw, ok := s.Get(key)
	if !ok || raw == "" {
		return empty
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Debug("Discarding unreadable stored value", "key", key, "err", err)
		return empty
	}
	return v
}

// SaveJSON encodes v and stores it under key.
func SaveJSON[T any](s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Set(key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
