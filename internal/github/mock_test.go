package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

// mockClient implements Client for testing.
type mockClient struct {
	searchFn        func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
	getRepositoryFn func(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	return m.searchFn(ctx, query, opts)
}

func (m *mockClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	return m.getRepositoryFn(ctx, owner, repo)
}

// okResponse returns a *gh.Response for a successful call.
func okResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
	}
}

// errorResponseFor builds the error go-github returns for a non-2xx status.
func errorResponseFor(code int, status string) error {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: code, Status: status},
		Message:  "upstream message",
	}
}

// makeRepository builds a go-github Repository with the given identity.
func makeRepository(id int64, owner, name string, stars int) *gh.Repository {
	return &gh.Repository{
		ID:              gh.Ptr(id),
		Name:            gh.Ptr(name),
		FullName:        gh.Ptr(owner + "/" + name),
		HTMLURL:         gh.Ptr("https://github.com/" + owner + "/" + name),
		Owner:           &gh.User{Login: gh.Ptr(owner), HTMLURL: gh.Ptr("https://github.com/" + owner)},
		StargazersCount: gh.Ptr(stars),
		UpdatedAt:       &gh.Timestamp{Time: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func searchResult(total int, repos ...*gh.Repository) *gh.RepositoriesSearchResult {
	return &gh.RepositoriesSearchResult{
		Total:             gh.Ptr(total),
		IncompleteResults: gh.Ptr(false),
		Repositories:      repos,
	}
}
