package search

import (
	"context"
	"errors"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stahnma/gh-repo-search/internal/github"
)

func TestExecutor_InitialState(t *testing.T) {
	e := NewExecutor(staticClient(0))
	r := e.Result()
	if r.Loading || r.HasSearched || r.Error != "" || r.TotalCount != 0 || len(r.Repos) != 0 {
		t.Errorf("unexpected initial state: %+v", r)
	}
}

func TestExecutor_Success(t *testing.T) {
	client := staticClient(100, makeRepository(1, "facebook/react"), makeRepository(2, "vercel/next.js"))
	e := NewExecutor(client)

	if err := e.Search(context.Background(), "react", 1, 10, github.SortStars, github.Filters{}); err != nil {
		t.Fatal(err)
	}

	r := e.Result()
	if r.Loading {
		t.Error("loading should be false after completion")
	}
	if r.TotalCount != 100 {
		t.Errorf("TotalCount = %d, want 100", r.TotalCount)
	}
	if len(r.Repos) != 2 || r.Repos[0].FullName != "facebook/react" {
		t.Errorf("Repos = %+v", r.Repos)
	}
	if !r.HasSearched {
		t.Error("HasSearched should be true")
	}
	if r.Error != "" {
		t.Errorf("Error = %q, want empty", r.Error)
	}
}

func TestExecutor_LoadingDuringCall(t *testing.T) {
	var e *Executor
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			if !e.Result().Loading {
				t.Error("loading should be true while the request is in flight")
			}
			return searchResult(0), okResponse(), nil
		},
	}
	e = NewExecutor(client)
	e.Search(context.Background(), "go", 1, 10, github.SortStars, github.Filters{})

	if e.Result().Loading {
		t.Error("loading should be false after completion")
	}
}

func TestExecutor_EmptyQuery(t *testing.T) {
	client := staticClient(1, makeRepository(1, "a/b"))
	e := NewExecutor(client)

	err := e.Search(context.Background(), "   ", 1, 10, github.SortStars, github.Filters{})
	if !errors.Is(err, github.ErrEmptyQuery) {
		t.Fatalf("err = %v, want ErrEmptyQuery", err)
	}
	if client.calls != 0 {
		t.Errorf("client called %d times", client.calls)
	}
	if r := e.Result(); r.Error != github.ErrEmptyQuery.Message || r.Loading {
		t.Errorf("unexpected state: %+v", r)
	}
}

func TestExecutor_APIError(t *testing.T) {
	e := NewExecutor(failingClient(notFound()))

	err := e.Search(context.Background(), "react", 1, 10, github.SortStars, github.Filters{})
	var apiErr *github.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("err = %v, want 404 APIError", err)
	}

	r := e.Result()
	if r.Error != "Failed to fetch repositories: 404 Not Found" {
		t.Errorf("Error = %q", r.Error)
	}
	if r.Error == GenericErrorMessage {
		t.Error("API errors must be distinguishable from the generic message")
	}
	if len(r.Repos) != 0 || r.Loading {
		t.Errorf("unexpected state: %+v", r)
	}
}

func TestExecutor_TransportErrorMessage(t *testing.T) {
	e := NewExecutor(failingClient(&url.Error{Op: "Get", URL: "https://api.github.com", Err: errors.New("no route to host")}))
	e.Search(context.Background(), "react", 1, 10, github.SortStars, github.Filters{})

	if r := e.Result(); r.Error == GenericErrorMessage || r.Error == "" {
		t.Errorf("transport failures carry their own message, got %q", r.Error)
	}
}

func TestExecutor_UnexpectedErrorUsesGenericMessage(t *testing.T) {
	e := NewExecutor(failingClient(errors.New("unexpected end of JSON input")))
	e.Search(context.Background(), "react", 1, 10, github.SortStars, github.Filters{})

	if r := e.Result(); r.Error != GenericErrorMessage {
		t.Errorf("Error = %q, want %q", r.Error, GenericErrorMessage)
	}
}

func TestExecutor_FailureClearsPreviousItems(t *testing.T) {
	fail := false
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			if fail {
				return nil, nil, notFound()
			}
			return searchResult(1, makeRepository(1, "a/b")), okResponse(), nil
		},
	}
	e := NewExecutor(client)
	e.Search(context.Background(), "x", 1, 10, github.SortStars, github.Filters{})
	fail = true
	e.Search(context.Background(), "x", 2, 10, github.SortStars, github.Filters{})

	if r := e.Result(); len(r.Repos) != 0 {
		t.Errorf("Repos = %+v, want empty after failure", r.Repos)
	}
}

func TestExecutor_SuccessClearsPreviousError(t *testing.T) {
	fail := true
	client := &mockClient{
		searchFn: func(_ context.Context, _ string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
			if fail {
				return nil, nil, notFound()
			}
			return searchResult(1, makeRepository(1, "a/b")), okResponse(), nil
		},
	}
	e := NewExecutor(client)
	e.Search(context.Background(), "x", 1, 10, github.SortStars, github.Filters{})
	fail = false
	e.Search(context.Background(), "x", 1, 10, github.SortStars, github.Filters{})

	if r := e.Result(); r.Error != "" {
		t.Errorf("Error = %q, want empty", r.Error)
	}
}

func TestExecutor_Reset(t *testing.T) {
	e := NewExecutor(staticClient(5, makeRepository(1, "a/b")))
	e.Search(context.Background(), "x", 1, 10, github.SortStars, github.Filters{})
	e.Reset()

	r := e.Result()
	if len(r.Repos) != 0 || r.TotalCount != 0 || r.Error != "" || r.HasSearched {
		t.Errorf("unexpected state after Reset: %+v", r)
	}
}

func TestExecutor_Notifies(t *testing.T) {
	e := NewExecutor(staticClient(0))
	calls := 0
	e.Subscribe(func() { calls++ })

	e.Search(context.Background(), "x", 1, 10, github.SortStars, github.Filters{})

	// Once when loading starts, once when it ends.
	if calls != 2 {
		t.Errorf("got %d notifications, want 2", calls)
	}
}

// overlappingClient blocks each query until its release channel closes.
type overlappingClient struct {
	ids     map[string]int64
	started map[string]chan struct{}
	release map[string]chan struct{}
}

func newOverlappingClient(queries ...string) *overlappingClient {
	c := &overlappingClient{
		ids:     make(map[string]int64),
		started: make(map[string]chan struct{}),
		release: make(map[string]chan struct{}),
	}
	for i, q := range queries {
		c.ids[q] = int64(i + 1)
		c.started[q] = make(chan struct{})
		c.release[q] = make(chan struct{})
	}
	return c
}

func (c *overlappingClient) SearchRepositories(_ context.Context, query string, _ *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	close(c.started[query])
	<-c.release[query]
	id := c.ids[query]
	return searchResult(int(id), makeRepository(id, query)), okResponse(), nil
}

func (c *overlappingClient) GetRepository(context.Context, string, string) (*gh.Repository, *gh.Response, error) {
	return nil, nil, nil
}

// runOverlapping issues "first" then "second", lets "second" resolve, then
// lets "first" resolve.
func runOverlapping(e *Executor, client *overlappingClient) {
	search := func(q string) <-chan struct{} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			e.Search(context.Background(), q, 1, 10, github.SortStars, github.Filters{})
		}()
		<-client.started[q]
		return done
	}

	firstDone := search("first")
	secondDone := search("second")

	close(client.release["second"])
	<-secondDone
	close(client.release["first"])
	<-firstDone
}

func TestExecutor_OverlappingSearchesLastResolvedWins(t *testing.T) {
	client := newOverlappingClient("first", "second")
	e := NewExecutor(client)

	runOverlapping(e, client)

	// The stale "first" response resolved last and overwrote "second".
	r := e.Result()
	if len(r.Repos) != 1 || r.Repos[0].FullName != "first" {
		t.Errorf("Repos = %+v, want the last-resolved (first) response", r.Repos)
	}
}

func TestExecutor_SequencingDiscardsSupersededResponse(t *testing.T) {
	client := newOverlappingClient("first", "second")
	e := NewExecutor(client, WithSequencing())

	runOverlapping(e, client)

	r := e.Result()
	if len(r.Repos) != 1 || r.Repos[0].FullName != "second" {
		t.Errorf("Repos = %+v, want the last-issued (second) response", r.Repos)
	}
	if r.Loading {
		t.Error("loading should be false once the latest search resolved")
	}
}
