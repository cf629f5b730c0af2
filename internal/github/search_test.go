package github

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	gh "github.com/google/go-github/v68/github"
)

func TestSearchRepositories_Basic(t *testing.T) {
	var gotQuery string
	var gotOpts *gh.SearchOptions
	client := &mockClient{
		searchFn: func(_ context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			gotQuery, gotOpts = query, opts
			return searchResult(100, makeRepository(1, "facebook", "react", 200000)), okResponse(), nil
		},
	}

	page, err := SearchRepositories(context.Background(), client, SearchParams{Query: "react", Page: 1, PerPage: 10})
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalCount != 100 {
		t.Errorf("TotalCount = %d, want 100", page.TotalCount)
	}
	if len(page.Items) != 1 || page.Items[0].FullName != "facebook/react" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
	if gotQuery != "react" {
		t.Errorf("query = %q, want react", gotQuery)
	}
	if gotOpts.Sort != "stars" || gotOpts.Order != "desc" {
		t.Errorf("sort/order = %s/%s, want stars/desc", gotOpts.Sort, gotOpts.Order)
	}
	if gotOpts.Page != 1 || gotOpts.PerPage != 10 {
		t.Errorf("page/per_page = %d/%d, want 1/10", gotOpts.Page, gotOpts.PerPage)
	}
}

func TestSearchRepositories_EmptyQuery(t *testing.T) {
	calls := 0
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			calls++
			return searchResult(0), okResponse(), nil
		},
	}

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := SearchRepositories(context.Background(), client, SearchParams{Query: q, Page: 1, PerPage: 10})
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("query %q: err = %v, want ErrEmptyQuery", q, err)
		}
	}
	if calls != 0 {
		t.Errorf("API called %d times for blank queries", calls)
	}
}

func TestSearchRepositories_FiltersAndSort(t *testing.T) {
	var gotQuery string
	var gotSort string
	client := &mockClient{
		searchFn: func(_ context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			gotQuery, gotSort = query, opts.Sort
			return searchResult(0), okResponse(), nil
		},
	}

	_, err := SearchRepositories(context.Background(), client, SearchParams{
		Query:   "web",
		Page:    2,
		PerPage: 10,
		Sort:    SortForks,
		Filters: Filters{
			Language:     "Python",
			MinStars:     1000,
			CreatedAfter: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "web language:Python stars:>=1000 created:>=2023-01-01"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotSort != "forks" {
		t.Errorf("sort = %q, want forks", gotSort)
	}
}

func TestSearchRepositories_HTTPError(t *testing.T) {
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, errorResponseFor(404, "404 Not Found")
		},
	}

	_, err := SearchRepositories(context.Background(), client, SearchParams{Query: "x", Page: 1, PerPage: 10})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != 404 {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
	if apiErr.StatusText != "Not Found" {
		t.Errorf("StatusText = %q, want Not Found", apiErr.StatusText)
	}
	if apiErr.Error() != "Failed to fetch repositories: 404 Not Found" {
		t.Errorf("message = %q", apiErr.Error())
	}
}

func TestSearchRepositories_NetworkError(t *testing.T) {
	netErr := &url.Error{Op: "Get", URL: "https://api.github.com/search/repositories", Err: errors.New("connection refused")}
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, netErr
		},
	}

	_, err := SearchRepositories(context.Background(), client, SearchParams{Query: "x", Page: 1, PerPage: 10})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for network failure", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "connection refused") {
		t.Errorf("message = %q, want transport message", apiErr.Message)
	}
	if !errors.Is(err, netErr) {
		t.Error("expected transport error to be unwrappable")
	}
}

func TestTrendingQuery(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := TrendingQuery(now); got != "created:>2024-02-15 stars:>1000" {
		t.Errorf("TrendingQuery = %q", got)
	}
}

func TestTrendingRepositories(t *testing.T) {
	var gotOpts *gh.SearchOptions
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			gotOpts = opts
			return searchResult(1, makeRepository(7, "a", "b", 5000)), okResponse(), nil
		},
	}

	page, err := TrendingRepositories(context.Background(), client, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(page.Items))
	}
	if gotOpts.PerPage != TrendingPerPage || gotOpts.Page != 0 {
		t.Errorf("page/per_page = %d/%d, want 0/%d", gotOpts.Page, gotOpts.PerPage, TrendingPerPage)
	}
	if gotOpts.Sort != "stars" || gotOpts.Order != "desc" {
		t.Errorf("sort/order = %s/%s", gotOpts.Sort, gotOpts.Order)
	}
}

func TestTrendingRepositories_Error(t *testing.T) {
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, errorResponseFor(403, "403 Forbidden")
		},
	}

	_, err := TrendingRepositories(context.Background(), client, time.Now())
	if err == nil || err.Error() != "Failed to fetch trending repositories: 403 Forbidden" {
		t.Errorf("err = %v", err)
	}
}

func TestGetRepository(t *testing.T) {
	client := &mockClient{
		getRepositoryFn: func(_ context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
			if owner != "golang" || repo != "go" {
				t.Errorf("lookup %s/%s", owner, repo)
			}
			return makeRepository(23096959, owner, repo, 120000), okResponse(), nil
		},
	}

	repo, err := GetRepository(context.Background(), client, "golang/go")
	if err != nil {
		t.Fatal(err)
	}
	if repo.ID != 23096959 || repo.StargazersCount != 120000 {
		t.Errorf("unexpected repo %+v", repo)
	}
}

func TestGetRepository_InvalidName(t *testing.T) {
	for _, name := range []string{"", "golang", "/go", "golang/", "a/b/c"} {
		if _, err := GetRepository(context.Background(), &mockClient{}, name); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}

func TestSearchRepositories_UnexpectedError(t *testing.T) {
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, errors.New("invalid character '<' looking for beginning of value")
		},
	}

	_, err := SearchRepositories(context.Background(), client, SearchParams{Query: "x", Page: 1, PerPage: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("decode failure should not be an *APIError, got %v", apiErr)
	}
}
