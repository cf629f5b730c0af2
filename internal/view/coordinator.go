package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/stahnma/gh-repo-search/internal/collections"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/pagination"
	"github.com/stahnma/gh-repo-search/internal/search"
	"github.com/stahnma/gh-repo-search/internal/state"
)

// DefaultPerPage is the search page size when none is configured.
const DefaultPerPage = 10

var (
	ErrNotPaginated   = errors.New("only search results are paginated")
	ErrPageOutOfRange = errors.New("page out of range")
)

// Mode selects which list the coordinator presents.
type Mode string

const (
	ModeSearch    Mode = "search"
	ModeTrending  Mode = "trending"
	ModeFavorites Mode = "favorites"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeSearch, ModeTrending, ModeFavorites:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode %q (want search, trending or favorites)", s)
}

// Scroller brings the list back to the top before a page change.
type Scroller interface {
	ScrollToTop()
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func()

func (f ScrollerFunc) ScrollToTop() { f() }

type noScroll struct{}

func (noScroll) ScrollToTop() {}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPerPage sets the search page size. Values below 1 are ignored.
func WithPerPage(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithScroller sets the scroll port.
func WithScroller(s Scroller) Option {
	return func(c *Coordinator) { c.scroller = s }
}

// Coordinator owns the current mode, page and query and routes user intents
// to the executor, the trending loader and the collections. Each mode keeps
// its own cached state; switching modes never clears another mode's data.
type Coordinator struct {
	state.Notifier

	executor  *search.Executor
	loader    *search.Loader
	favorites *collections.Favorites
	history   *collections.History
	scroller  Scroller
	perPage   int

	mu       sync.Mutex
	mode     Mode
	page     int
	query    string
	composer *search.Composer
	jump     *pagination.JumpInput
	unsub    []func()
}

// New creates a coordinator in trending mode. Call Start to load the feed.
func New(executor *search.Executor, loader *search.Loader, favorites *collections.Favorites, history *collections.History, opts ...Option) *Coordinator {
	c := &Coordinator{
		executor:  executor,
		loader:    loader,
		favorites: favorites,
		history:   history,
		scroller:  noScroll{},
		perPage:   DefaultPerPage,
		mode:      ModeTrending,
		page:      1,
		composer:  search.NewComposer(),
		jump:      pagination.NewJumpInput(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.unsub = []func(){
		executor.Subscribe(c.Notify),
		loader.Subscribe(c.Notify),
		favorites.Subscribe(c.Notify),
		history.Subscribe(c.Notify),
	}
	return c
}

// Close detaches the coordinator from its child containers.
func (c *Coordinator) Close() {
	for _, fn := range c.unsub {
		fn()
	}
	c.unsub = nil
}

// PerPage returns the search page size.
func (c *Coordinator) PerPage() int { return c.perPage }

// Mode returns the current mode.
func (c *Coordinator) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Start activates the initial mode.
func (c *Coordinator) Start(ctx context.Context) error {
	return c.activate(ctx, c.Mode())
}

// SubmitSearch records q in history and shows page 1 of its results.
func (c *Coordinator) SubmitSearch(ctx context.Context, q string) error {
	c.history.Add(q)
	c.mu.Lock()
	c.query = q
	c.page = 1
	c.mode = ModeSearch
	c.mu.Unlock()
	return c.runSearch(ctx)
}

// ChangePage shows page p of the current search.
func (c *Coordinator) ChangePage(ctx context.Context, p int) error {
	c.mu.Lock()
	if c.mode != ModeSearch {
		c.mu.Unlock()
		return ErrNotPaginated
	}
	total := c.totalPages()
	if p < 1 || p > total {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, p, total)
	}
	c.page = p
	c.mu.Unlock()

	c.scroller.ScrollToTop()
	return c.runSearch(ctx)
}

// JumpToPage parses text as a page number and changes to it. Invalid text
// is kept in the jump input and reported as ErrPageOutOfRange.
func (c *Coordinator) JumpToPage(ctx context.Context, text string) error {
	c.mu.Lock()
	if c.mode != ModeSearch {
		c.mu.Unlock()
		return ErrNotPaginated
	}
	c.jump.SetTotal(c.totalPages())
	c.jump.Set(text)
	p, ok := c.jump.Submit()
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrPageOutOfRange, text)
	}
	return c.ChangePage(ctx, p)
}

// EditDraft changes the draft filters. It never searches.
func (c *Coordinator) EditDraft(edit func(*github.Filters)) {
	c.mu.Lock()
	c.composer.EditDraft(edit)
	c.mu.Unlock()
	c.Notify()
}

// ApplyFilters commits the draft filters. It reports whether a search was
// issued, which happens only while a search query is active.
func (c *Coordinator) ApplyFilters(ctx context.Context) (bool, error) {
	return c.mutateComposer(ctx, func(cmp *search.Composer) { cmp.Apply() })
}

// ClearFilters resets draft and applied filters.
func (c *Coordinator) ClearFilters(ctx context.Context) (bool, error) {
	return c.mutateComposer(ctx, func(cmp *search.Composer) { cmp.Clear() })
}

// ChangeSort sets the sort key. Pending draft edits stay pending.
func (c *Coordinator) ChangeSort(ctx context.Context, key github.SortKey) (bool, error) {
	return c.mutateComposer(ctx, func(cmp *search.Composer) { cmp.SetSort(key) })
}

func (c *Coordinator) mutateComposer(ctx context.Context, fn func(*search.Composer)) (bool, error) {
	c.mu.Lock()
	fn(c.composer)
	active := c.query != "" && c.mode == ModeSearch
	if active {
		c.page = 1
	}
	c.mu.Unlock()

	if !active {
		c.Notify()
		return false, nil
	}
	return true, c.runSearch(ctx)
}

// SwitchMode changes mode and resets the page to 1.
func (c *Coordinator) SwitchMode(ctx context.Context, m Mode) error {
	c.mu.Lock()
	c.mode = m
	c.page = 1
	c.mu.Unlock()
	c.Notify()
	return c.activate(ctx, m)
}

// Refresh refetches the data behind the current mode: the trending feed,
// or the current search page. Favorites are local and need no refresh.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.mu.Lock()
	mode, query := c.mode, c.query
	c.mu.Unlock()

	switch {
	case mode == ModeTrending:
		return c.loader.Reload(ctx)
	case mode == ModeSearch && query != "":
		return c.runSearch(ctx)
	}
	return nil
}

// ToggleFavorite adds or removes repo and reports whether it is now a
// favorite.
func (c *Coordinator) ToggleFavorite(repo github.Repo) bool {
	return c.favorites.Toggle(repo)
}

// IsFavorite reports whether id is a favorite.
func (c *Coordinator) IsFavorite(id int64) bool {
	return c.favorites.Contains(id)
}

func (c *Coordinator) activate(ctx context.Context, m Mode) error {
	if m == ModeTrending {
		return c.loader.Load(ctx)
	}
	return nil
}

func (c *Coordinator) runSearch(ctx context.Context) error {
	c.mu.Lock()
	q, p := c.query, c.page
	sort, filters := c.composer.Sort(), c.composer.Applied()
	c.mu.Unlock()

	slog.Debug("Searching", "q", q, "page", p, "sort", sort)
	return c.executor.Search(ctx, q, p, c.perPage, sort, filters)
}

// totalPages must be called with c.mu held.
func (c *Coordinator) totalPages() int {
	return pagination.TotalPages(c.executor.Result().TotalCount, c.perPage)
}
