package collections

import (
	"log/slog"
	"strings"

	"github.com/stahnma/gh-repo-search/internal/state"
	"github.com/stahnma/gh-repo-search/internal/storage"
)

const (
	// HistoryKey is the storage key of the search history.
	HistoryKey = "github-search-history"
	// MaxHistoryItems bounds the search history.
	MaxHistoryItems = 10
)

// History is the most-recent-first list of submitted queries.
type History struct {
	state.Notifier

	store   storage.Store
	entries []string
}

// NewHistory loads the history from store, enforcing the size bound.
func NewHistory(store storage.Store) *History {
	entries := storage.LoadJSON(store, HistoryKey, []string{})
	if len(entries) > MaxHistoryItems {
		entries = entries[:MaxHistoryItems]
	}
	return &History{store: store, entries: entries}
}

// List returns the entries, most recent first.
func (h *History) List() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Add records query at the front. Blank queries are ignored and an
// existing entry is moved rather than duplicated.
func (h *History) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	next := make([]string, 0, MaxHistoryItems)
	next = append(next, query)
	for _, e := range h.entries {
		if e != query && len(next) < MaxHistoryItems {
			next = append(next, e)
		}
	}
	h.entries = next
	h.changed()
}

// Remove deletes an entry.
func (h *History) Remove(query string) {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if e != query {
			kept = append(kept, e)
		}
	}
	h.entries = kept
	h.changed()
}

// Clear empties the history and deletes its storage key.
func (h *History) Clear() {
	h.entries = nil
	if err := h.store.Remove(HistoryKey); err != nil {
		slog.Warn("Failed to clear search history", "err", err)
	}
	h.Notify()
}

func (h *History) changed() {
	if err := storage.SaveJSON(h.store, HistoryKey, h.entries); err != nil {
		slog.Warn("Failed to save search history", "err", err)
	}
	h.Notify()
}
