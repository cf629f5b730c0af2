package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/collections"
	"github.com/stahnma/gh-repo-search/internal/config"
	"github.com/stahnma/gh-repo-search/internal/export"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/logging"
	"github.com/stahnma/gh-repo-search/internal/search"
	"github.com/stahnma/gh-repo-search/internal/storage"
	"github.com/stahnma/gh-repo-search/internal/view"
)

// App holds shared application state.
type App struct {
	Config    config.Config
	Store     *storage.Local
	GHClient  github.Client
	Clipboard export.Clipboard
	Now       func() time.Time
	GitSHA    string
	GitDirty  string

	fenced    bool
	favorites *collections.Favorites
	history   *collections.History
	theme     *collections.Theme
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) (*App, error) {
	store, err := storage.Open(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	return &App{
		Config:    cfg,
		Store:     store,
		Clipboard: export.SystemClipboard{},
		Now:       time.Now,
		GitSHA:    gitSHA,
		GitDirty:  gitDirty,
	}, nil
}

// ensureClient creates the GitHub client if it doesn't exist. Without a
// token the client is anonymous and subject to lower rate limits.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	client, err := github.NewClient(a.Config.GitHubToken, a.Config.APIBaseURL)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	a.GHClient = client
	return nil
}

// Favorites returns the persisted favorites, loading them on first use.
func (a *App) Favorites() *collections.Favorites {
	if a.favorites == nil {
		a.favorites = collections.NewFavorites(a.Store)
	}
	return a.favorites
}

// History returns the persisted search history.
func (a *App) History() *collections.History {
	if a.history == nil {
		a.history = collections.NewHistory(a.Store)
	}
	return a.history
}

// Theme returns the persisted theme preference.
func (a *App) Theme() *collections.Theme {
	if a.theme == nil {
		a.theme = collections.NewTheme(a.Store)
	}
	return a.theme
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// newCoordinator wires a view coordinator over the shared collections.
func (a *App) newCoordinator(opts ...view.Option) (*view.Coordinator, error) {
	if err := a.ensureClient(); err != nil {
		return nil, err
	}
	opts = append([]view.Option{view.WithPerPage(a.Config.PerPage)}, opts...)
	return view.New(
		search.NewExecutor(a.GHClient),
		search.NewLoader(a.GHClient),
		a.Favorites(),
		a.History(),
		opts...,
	), nil
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	var debug bool
	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Search GitHub repositories, browse trending projects and keep favorites.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logging.SetDebug(true)
			}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.fenced, "fenced", false, "Wrap JSON output in a markdown code fence")
	rootCmd.PersistentFlags().IntVar(&a.Config.PerPage, "per-page", a.Config.PerPage, "Search results per page")

	rootCmd.AddCommand(a.newSearchCommand())
	rootCmd.AddCommand(a.newTrendingCommand())
	rootCmd.AddCommand(a.newFavoritesCommand())
	rootCmd.AddCommand(a.newHistoryCommand())
	rootCmd.AddCommand(a.newThemeCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newCopyCommand())
	rootCmd.AddCommand(a.newBrowseCommand())
	rootCmd.AddCommand(a.newClearStateCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
