package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/state"
)

// TrendingErrorMessage is shown for trending failures that are not
// *github.APIError.
const TrendingErrorMessage = "Failed to load trending repositories"

// Feed is a point-in-time copy of the trending loader state.
type Feed struct {
	Repos   []github.Repo
	Loading bool
	Error   string
	Loaded  bool
}

// Loader fetches the trending feed once per lifetime. Its state is
// independent of the search executor.
type Loader struct {
	state.Notifier

	client github.Client
	now    func() time.Time

	once sync.Once
	mu   sync.Mutex
	feed Feed
}

// NewLoader creates a loader that has not fetched yet.
func NewLoader(client github.Client) *Loader {
	return &Loader{client: client, now: time.Now, feed: Feed{Repos: []github.Repo{}}}
}

// Feed returns a copy of the current state.
func (l *Loader) Feed() Feed {
	l.mu.Lock()
	defer l.mu.Unlock()
	f := l.feed
	f.Repos = append([]github.Repo(nil), l.feed.Repos...)
	return f
}

// Load fetches the feed on the first call; later calls return immediately.
func (l *Loader) Load(ctx context.Context) error {
	var err error
	l.once.Do(func() { err = l.fetch(ctx) })
	return err
}

// Reload fetches the feed again unconditionally.
func (l *Loader) Reload(ctx context.Context) error {
	l.once.Do(func() {})
	return l.fetch(ctx)
}

func (l *Loader) fetch(ctx context.Context) error {
	l.mu.Lock()
	l.feed.Loading = true
	l.feed.Error = ""
	l.mu.Unlock()
	l.Notify()

	page, err := github.TrendingRepositories(ctx, l.client, l.now())

	l.mu.Lock()
	l.feed.Loading = false
	l.feed.Loaded = true
	if err != nil {
		l.feed.Error = trendingMessage(err)
	} else {
		l.feed.Repos = page.Items
	}
	l.mu.Unlock()
	l.Notify()

	if err != nil {
		slog.Debug("Trending load failed", "err", err)
	}
	return err
}

func trendingMessage(err error) string {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return TrendingErrorMessage
}
