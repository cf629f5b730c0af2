package search

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements github.Client for testing.
type mockClient struct {
	searchFn func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
	calls    int
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	m.calls++
	return m.searchFn(ctx, query, opts)
}

func (m *mockClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	return nil, nil, nil
}

func okResponse() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: 200}}
}

func makeRepository(id int64, fullName string) *gh.Repository {
	return &gh.Repository{ID: gh.Ptr(id), FullName: gh.Ptr(fullName)}
}

func searchResult(total int, repos ...*gh.Repository) *gh.RepositoriesSearchResult {
	return &gh.RepositoriesSearchResult{Total: gh.Ptr(total), Repositories: repos}
}

// staticClient answers every search with the same result.
func staticClient(total int, repos ...*gh.Repository) *mockClient {
	return &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return searchResult(total, repos...), okResponse(), nil
		},
	}
}

// failingClient answers every search with err.
func failingClient(err error) *mockClient {
	return &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			return nil, nil, err
		},
	}
}

func notFound() error {
	return &gh.ErrorResponse{Response: &http.Response{StatusCode: 404, Status: "404 Not Found"}}
}
