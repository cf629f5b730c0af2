package github

import (
	"fmt"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// Owner is the account that owns a repository.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Repo is a repository summary as returned by the search API. Its JSON
// shape matches the API so persisted favorites decode the same way.
type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           Owner     `json:"owner"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        *string   `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DescriptionOr returns the description, or def when there is none.
func (r Repo) DescriptionOr(def string) string {
	if r.Description == nil || *r.Description == "" {
		return def
	}
	return *r.Description
}

// LanguageOr returns the primary language, or def when there is none.
func (r Repo) LanguageOr(def string) string {
	if r.Language == nil || *r.Language == "" {
		return def
	}
	return *r.Language
}

// SearchPage is one page of search results.
type SearchPage struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []Repo `json:"items"`
}

// SortKey selects the search ordering. Order is always descending.
type SortKey string

const (
	SortStars   SortKey = "stars"
	SortForks   SortKey = "forks"
	SortUpdated SortKey = "updated"
)

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortStars, SortForks, SortUpdated:
		return k, nil
	}
	return "", fmt.Errorf("invalid sort %q (want stars, forks or updated)", s)
}

func fromRepository(r *gh.Repository) Repo {
	return Repo{
		ID:       r.GetID(),
		Name:     r.GetName(),
		FullName: r.GetFullName(),
		Owner: Owner{
			Login:     r.GetOwner().GetLogin(),
			AvatarURL: r.GetOwner().GetAvatarURL(),
			HTMLURL:   r.GetOwner().GetHTMLURL(),
		},
		HTMLURL:         r.GetHTMLURL(),
		Description:     r.Description,
		StargazersCount: r.GetStargazersCount(),
		WatchersCount:   r.GetWatchersCount(),
		ForksCount:      r.GetForksCount(),
		Language:        r.Language,
		UpdatedAt:       r.GetUpdatedAt().Time,
	}
}

func newSearchPage(result *gh.RepositoriesSearchResult) *SearchPage {
	page := &SearchPage{
		TotalCount:        result.GetTotal(),
		IncompleteResults: result.GetIncompleteResults(),
		Items:             make([]Repo, 0, len(result.Repositories)),
	}
	for _, r := range result.Repositories {
		page.Items = append(page.Items, fromRepository(r))
	}
	return page
}
