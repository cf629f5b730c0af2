package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/export"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/view"
)

const browseHelp = `Commands:
  s, search <query>          search repositories
  t, trending                show trending repositories
  f, favorites               show favorites
  r, results                 back to search results
  n, next / p, prev          next or previous page
  page <n>                   go to page n
  sort <stars|forks|updated> change sort order
  lang <name>                set draft language filter
  stars <n>                  set draft minimum stars filter
  since <YYYY-MM-DD>         set draft created-after filter
  apply                      apply draft filters
  clear                      clear all filters
  fav <n>                    toggle favorite for item n
  refresh                    reload the current list
  history                    show recent searches
  theme                      toggle theme
  export <format> [file]     export favorites
  copy                       copy favorite links to the clipboard
  help                       show this help
  q, quit                    exit`

func (a *App) newBrowseCommand() *cobra.Command {
	var noClear bool
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive shell for searching and browsing repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			scroll := view.ScrollerFunc(func() {
				if !noClear {
					fmt.Fprint(w, "\033[H\033[2J")
				}
			})
			coord, err := a.newCoordinator(view.WithScroller(scroll))
			if err != nil {
				return err
			}
			defer coord.Close()

			s := &browseSession{app: a, coord: coord, w: w}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "Do not clear the screen when changing pages")
	return cmd
}

type browseSession struct {
	app   *App
	coord *view.Coordinator
	w     io.Writer
}

var errQuit = errors.New("quit")

func (s *browseSession) run(ctx context.Context, in io.Reader) error {
	loading := false
	unsubscribe := s.coord.Subscribe(func() {
		now := s.coord.Snapshot().Loading
		if now && !loading {
			fmt.Fprintln(s.w, "Loading...")
		}
		loading = now
	})
	defer unsubscribe()

	// A failed trending load is shown by render.
	s.coord.Start(ctx)
	s.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := s.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.w, "Error: %v\n", err)
		}
	}
}

func (s *browseSession) render() {
	renderSnapshot(s.w, s.coord.Snapshot(), s.coord.IsFavorite)
}

// exec runs one shell command. Search failures are already part of the
// rendered snapshot, so only input errors are returned.
func (s *browseSession) exec(ctx context.Context, line string) error {
	name, arg, _ := strings.Cut(line, " ")
	name, arg = strings.ToLower(name), strings.TrimSpace(arg)

	switch name {
	case "q", "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.w, browseHelp)
		return nil
	case "s", "search":
		if arg == "" {
			return errors.New("usage: search <query>")
		}
		s.coord.SubmitSearch(ctx, arg)
	case "t", "trending":
		s.coord.SwitchMode(ctx, view.ModeTrending)
	case "f", "favorites":
		s.coord.SwitchMode(ctx, view.ModeFavorites)
	case "r", "results":
		s.coord.SwitchMode(ctx, view.ModeSearch)
	case "n", "next", "p", "prev":
		delta := 1
		if name == "p" || name == "prev" {
			delta = -1
		}
		if err := s.coord.ChangePage(ctx, s.coord.Snapshot().Page+delta); err != nil && !isSearchFailure(err) {
			return err
		}
	case "page":
		if err := s.coord.JumpToPage(ctx, arg); err != nil && !isSearchFailure(err) {
			return err
		}
	case "sort":
		key, err := github.ParseSortKey(arg)
		if err != nil {
			return err
		}
		s.coord.ChangeSort(ctx, key)
	case "lang":
		s.coord.EditDraft(func(f *github.Filters) { f.Language = arg })
		return s.showDraft()
	case "stars":
		n := 0
		if arg != "" {
			var err error
			if n, err = strconv.Atoi(arg); err != nil || n < 0 {
				return fmt.Errorf("invalid star count %q", arg)
			}
		}
		s.coord.EditDraft(func(f *github.Filters) { f.MinStars = n })
		return s.showDraft()
	case "since":
		d, err := github.ParseDate(arg)
		if err != nil {
			return err
		}
		s.coord.EditDraft(func(f *github.Filters) { f.CreatedAfter = d })
		return s.showDraft()
	case "apply":
		s.coord.ApplyFilters(ctx)
	case "clear":
		s.coord.ClearFilters(ctx)
	case "fav":
		return s.toggleFavorite(arg)
	case "refresh":
		s.coord.Refresh(ctx)
	case "history":
		for i, q := range s.coord.Snapshot().History {
			fmt.Fprintf(s.w, "%2d. %s\n", i+1, q)
		}
		return nil
	case "theme":
		fmt.Fprintf(s.w, "Theme: %s\n", s.app.Theme().Toggle())
		return nil
	case "export":
		return s.export(arg)
	case "copy":
		if !export.CopyLinks(s.app.Clipboard, s.app.Favorites().List()) {
			return errors.New("failed to copy links to clipboard")
		}
		fmt.Fprintln(s.w, "Copied links to clipboard.")
		return nil
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}

	s.render()
	return nil
}

func (s *browseSession) showDraft() error {
	draft := s.coord.Snapshot().Draft
	if draft.IsZero() {
		fmt.Fprintln(s.w, "Draft filters: none")
		return nil
	}
	fmt.Fprintf(s.w, "Draft filters: %s (apply to use)\n", strings.Join(draft.Qualifiers(), " "))
	return nil
}

func (s *browseSession) toggleFavorite(arg string) error {
	repos := s.coord.Snapshot().Repos
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(repos) {
		return fmt.Errorf("no item %q on this page", arg)
	}
	repo := repos[n-1]
	if s.coord.ToggleFavorite(repo) {
		fmt.Fprintf(s.w, "Added %s to favorites.\n", repo.FullName)
	} else {
		fmt.Fprintf(s.w, "Removed %s from favorites.\n", repo.FullName)
	}
	return nil
}

func (s *browseSession) export(arg string) error {
	formatName, output, _ := strings.Cut(arg, " ")
	if formatName == "" {
		formatName = string(export.FormatJSON)
	}
	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	favs := s.app.Favorites().List()
	if len(favs) == 0 {
		return errors.New("no favorites to export")
	}
	data, err := export.Render(f, favs, s.app.now())
	if err != nil {
		return err
	}
	output = strings.TrimSpace(output)
	if output == "" {
		output = export.Filename(f, s.app.now())
	}
	if err := writeFile(output, data); err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Exported %d repositories to %s\n", len(favs), output)
	return nil
}

// isSearchFailure reports errors that the snapshot already shows.
func isSearchFailure(err error) bool {
	return !errors.Is(err, view.ErrNotPaginated) && !errors.Is(err, view.ErrPageOutOfRange)
}
