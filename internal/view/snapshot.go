package view

import (
	"fmt"

	"github.com/stahnma/gh-repo-search/internal/format"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/pagination"
)

const (
	MsgGetStarted  = "Search for repositories to get started"
	MsgNoFavorites = "No favorites yet"
	MsgNoTrending  = "No trending repositories available"
)

// Snapshot is everything a renderer needs to draw the current view.
type Snapshot struct {
	Mode       Mode
	Query      string
	Page       int
	TotalPages int
	Controls   []pagination.Control

	Sort    github.SortKey
	Draft   github.Filters
	Applied github.Filters

	Repos       []github.Repo
	Loading     bool
	Error       string
	HasSearched bool

	Empty        bool
	EmptyMessage string
	Summary      string

	FavoriteCount int
	History       []string
}

// HasActiveDraft reports whether any draft filter is set.
func (s Snapshot) HasActiveDraft() bool { return !s.Draft.IsZero() }

// Snapshot returns the current view state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	s := Snapshot{
		Mode:    c.mode,
		Query:   c.query,
		Page:    c.page,
		Sort:    c.composer.Sort(),
		Draft:   c.composer.Draft(),
		Applied: c.composer.Applied(),
	}
	c.mu.Unlock()

	result := c.executor.Result()
	s.HasSearched = result.HasSearched
	s.FavoriteCount = c.favorites.Len()
	s.History = c.history.List()

	switch s.Mode {
	case ModeSearch:
		s.Repos, s.Loading, s.Error = result.Repos, result.Loading, result.Error
		s.TotalPages = pagination.TotalPages(result.TotalCount, c.perPage)
		if s.TotalPages > 1 {
			s.Controls = pagination.Window(s.Page, s.TotalPages)
		}
	case ModeTrending:
		feed := c.loader.Feed()
		s.Repos, s.Loading, s.Error = feed.Repos, feed.Loading, feed.Error
	case ModeFavorites:
		s.Repos = c.favorites.List()
	}

	s.Empty = !s.Loading && len(s.Repos) == 0
	if s.Empty {
		s.EmptyMessage = emptyMessage(s)
	} else if !s.Loading {
		s.Summary = summary(s, result.TotalCount)
	}
	return s
}

func emptyMessage(s Snapshot) string {
	switch s.Mode {
	case ModeSearch:
		if s.HasSearched {
			return fmt.Sprintf(`No repositories found for "%s"`, s.Query)
		}
		return MsgGetStarted
	case ModeFavorites:
		return MsgNoFavorites
	case ModeTrending:
		if s.Error == "" {
			return MsgNoTrending
		}
	}
	return ""
}

func summary(s Snapshot, totalCount int) string {
	switch s.Mode {
	case ModeSearch:
		return fmt.Sprintf("Found %s repositories (showing page %d of %d)", format.Number(totalCount), s.Page, s.TotalPages)
	case ModeTrending:
		return "Showing trending repositories from the past month"
	case ModeFavorites:
		return fmt.Sprintf("Your saved favorite repositories (%d)", s.FavoriteCount)
	}
	return ""
}
