package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
)

const (
	// TrendingMinStars is the popularity threshold of the trending feed.
	TrendingMinStars = 1000
	// TrendingPerPage is the fixed size of the trending feed.
	TrendingPerPage = 10
)

// SearchParams describes one page of a repository search.
type SearchParams struct {
	Query   string
	Page    int
	PerPage int
	Sort    SortKey
	Filters Filters
}

// SearchRepositories runs a keyword search. Blank queries fail with
// ErrEmptyQuery without contacting the API; every other failure is an
// *APIError.
func SearchRepositories(ctx context.Context, client Client, p SearchParams) (*SearchPage, error) {
	if strings.TrimSpace(p.Query) == "" {
		return nil, ErrEmptyQuery
	}
	sort := p.Sort
	if sort == "" {
		sort = SortStars
	}
	opts := &gh.SearchOptions{
		Sort:        string(sort),
		Order:       "desc",
		ListOptions: gh.ListOptions{Page: p.Page, PerPage: p.PerPage},
	}
	result, _, err := client.SearchRepositories(ctx, p.Filters.Compose(p.Query), opts)
	if err != nil {
		return nil, translateError("repositories", err)
	}
	return newSearchPage(result), nil
}

// TrendingQuery returns the trending feed query: repositories created in
// the month before now with more than TrendingMinStars stars.
func TrendingQuery(now time.Time) string {
	since := now.UTC().AddDate(0, -1, 0).Format(DateLayout)
	return fmt.Sprintf("created:>%s stars:>%d", since, TrendingMinStars)
}

// TrendingRepositories fetches the single-page trending feed.
func TrendingRepositories(ctx context.Context, client Client, now time.Time) (*SearchPage, error) {
	opts := &gh.SearchOptions{
		Sort:        string(SortStars),
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: TrendingPerPage},
	}
	result, _, err := client.SearchRepositories(ctx, TrendingQuery(now), opts)
	if err != nil {
		return nil, translateError("trending repositories", err)
	}
	return newSearchPage(result), nil
}

// GetRepository looks up a single repository by its "owner/name" form.
func GetRepository(ctx context.Context, client Client, fullName string) (Repo, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("invalid repository %q (want owner/name)", fullName)
	}
	repo, _, err := client.GetRepository(ctx, owner, name)
	if err != nil {
		return Repo{}, translateError("repository", err)
	}
	return fromRepository(repo), nil
}
