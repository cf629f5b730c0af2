package search

import (
	"github.com/stahnma/gh-repo-search/internal/github"
)

// Composer keeps the filter set being edited apart from the one that drives
// searches, along with the sort key. It never searches on its own.
type Composer struct {
	draft   github.Filters
	applied github.Filters
	sort    github.SortKey
}

// NewComposer starts with no filters and sort by stars.
func NewComposer() *Composer {
	return &Composer{sort: github.SortStars}
}

// Draft returns the filters being edited.
func (c *Composer) Draft() github.Filters { return c.draft }

// Applied returns the filters used by the last issued search.
func (c *Composer) Applied() github.Filters { return c.applied }

// Sort returns the sort key.
func (c *Composer) Sort() github.SortKey { return c.sort }

// EditDraft changes the draft filters only.
func (c *Composer) EditDraft(edit func(*github.Filters)) {
	edit(&c.draft)
}

// HasActiveDraft reports whether any draft filter is set.
func (c *Composer) HasActiveDraft() bool {
	return !c.draft.IsZero()
}

// Apply commits the draft and returns the new applied filters.
func (c *Composer) Apply() github.Filters {
	c.applied = c.draft
	return c.applied
}

// Clear resets both the draft and the applied filters.
func (c *Composer) Clear() {
	c.draft = github.Filters{}
	c.applied = github.Filters{}
}

// SetSort changes the sort key. Pending draft edits stay pending.
func (c *Composer) SetSort(key github.SortKey) {
	c.sort = key
}

// Query composes a raw query with the applied filters.
func (c *Composer) Query(raw string) string {
	return c.applied.Compose(raw)
}
