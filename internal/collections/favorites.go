package collections

import (
	"log/slog"

	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/state"
	"github.com/stahnma/gh-repo-search/internal/storage"
)

// FavoritesKey is the storage key of the favorites collection.
const FavoritesKey = "github-search-favorites"

// Favorites is an insertion-ordered set of repositories keyed by id,
// persisted on every mutation.
type Favorites struct {
	state.Notifier

	store storage.Store
	repos []github.Repo
	index map[int64]struct{}
}

// NewFavorites loads the collection from store. Unreadable data yields an
// empty collection; duplicate ids in stored data keep the first entry.
func NewFavorites(store storage.Store) *Favorites {
	f := &Favorites{store: store, index: make(map[int64]struct{})}
	for _, r := range storage.LoadJSON(store, FavoritesKey, []github.Repo{}) {
		if _, dup := f.index[r.ID]; dup {
			continue
		}
		f.index[r.ID] = struct{}{}
		f.repos = append(f.repos, r)
	}
	return f
}

// List returns the favorites in insertion order.
func (f *Favorites) List() []github.Repo {
	out := make([]github.Repo, len(f.repos))
	copy(out, f.repos)
	return out
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return len(f.repos)
}

// Contains reports whether a repository id is a favorite.
func (f *Favorites) Contains(id int64) bool {
	_, ok := f.index[id]
	return ok
}

// Add appends repo unless its id is already present.
func (f *Favorites) Add(repo github.Repo) {
	if f.Contains(repo.ID) {
		return
	}
	f.index[repo.ID] = struct{}{}
	f.repos = append(f.repos, repo)
	f.changed()
}

// Remove drops the repository with the given id, if present.
func (f *Favorites) Remove(id int64) {
	if !f.Contains(id) {
		return
	}
	delete(f.index, id)
	kept := f.repos[:0]
	for _, r := range f.repos {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.repos = kept
	f.changed()
}

// Toggle removes repo if it is a favorite and adds it otherwise. It
// returns whether repo is a favorite afterwards.
func (f *Favorites) Toggle(repo github.Repo) bool {
	if f.Contains(repo.ID) {
		f.Remove(repo.ID)
		return false
	}
	f.Add(repo)
	return true
}

func (f *Favorites) changed() {
	if err := storage.SaveJSON(f.store, FavoritesKey, f.repos); err != nil {
		slog.Warn("Failed to save favorites", "err", err)
	}
	f.Notify()
}
