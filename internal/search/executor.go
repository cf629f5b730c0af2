package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/state"
)

// GenericErrorMessage is shown for failures that are not *github.APIError.
const GenericErrorMessage = "An unexpected error occurred"

// Result is a point-in-time copy of the executor state.
type Result struct {
	Repos       []github.Repo
	TotalCount  int
	Loading     bool
	Error       string
	HasSearched bool
}

// Executor runs searches and holds the loading, error and result state of
// the most recently completed one.
//
// Overlapping calls are not queued. By default every completion writes its
// result, so the response that resolves last wins even if it was issued
// first. WithSequencing makes responses to superseded calls be dropped.
type Executor struct {
	state.Notifier

	client    github.Client
	sequenced bool

	mu     sync.Mutex
	seq    uint64
	result Result
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithSequencing discards responses to searches superseded by a later call.
func WithSequencing() ExecutorOption {
	return func(e *Executor) { e.sequenced = true }
}

// NewExecutor creates an idle executor.
func NewExecutor(client github.Client, opts ...ExecutorOption) *Executor {
	e := &Executor{client: client, result: Result{Repos: []github.Repo{}}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result returns a copy of the current state.
func (e *Executor) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.result
	r.Repos = append([]github.Repo(nil), e.result.Repos...)
	return r
}

// Search runs one page of a query. A blank query is rejected with
// github.ErrEmptyQuery before any request. The returned error is also
// recorded, as a message, in the executor state.
func (e *Executor) Search(ctx context.Context, query string, page, perPage int, sort github.SortKey, filters github.Filters) error {
	e.mu.Lock()
	e.seq++
	id := e.seq
	e.result.Loading = true
	e.result.Error = ""
	e.mu.Unlock()
	e.Notify()

	res, err := github.SearchRepositories(ctx, e.client, github.SearchParams{
		Query:   query,
		Page:    page,
		PerPage: perPage,
		Sort:    sort,
		Filters: filters,
	})

	e.mu.Lock()
	if e.sequenced && id != e.seq {
		e.mu.Unlock()
		slog.Debug("Discarding superseded search response", "q", query, "page", page)
		return err
	}
	e.result.Loading = false
	if err != nil {
		e.result.Repos = []github.Repo{}
		e.result.Error = errorMessage(err)
	} else {
		e.result.Repos = res.Items
		e.result.TotalCount = res.TotalCount
		e.result.HasSearched = true
	}
	e.mu.Unlock()
	e.Notify()

	if err != nil {
		slog.Debug("Search failed", "q", query, "page", page, "err", err)
	}
	return err
}

// Reset clears results, total, error and the searched flag. Loading is
// left untouched.
func (e *Executor) Reset() {
	e.mu.Lock()
	e.result.Repos = []github.Repo{}
	e.result.TotalCount = 0
	e.result.Error = ""
	e.result.HasSearched = false
	e.mu.Unlock()
	e.Notify()
}

func errorMessage(err error) string {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericErrorMessage
}
