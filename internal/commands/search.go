package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/format"
	"github.com/stahnma/gh-repo-search/internal/github"
)

func (a *App) newSearchCommand() *cobra.Command {
	var (
		page         int
		sortName     string
		language     string
		minStars     int
		createdAfter string
		jsonOut      bool
	)
	cmd := &cobra.Command{
		Use:   "search <query> [flags]",
		Short: "Search repositories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortKey, err := github.ParseSortKey(sortName)
			if err != nil {
				return err
			}
			created, err := github.ParseDate(createdAfter)
			if err != nil {
				return err
			}

			coord, err := a.newCoordinator()
			if err != nil {
				return err
			}
			defer coord.Close()

			ctx := cmd.Context()
			coord.EditDraft(func(f *github.Filters) {
				f.Language = language
				f.MinStars = minStars
				f.CreatedAfter = created
			})
			// No query is active yet, so neither call searches.
			coord.ApplyFilters(ctx)
			coord.ChangeSort(ctx, sortKey)

			if err := coord.SubmitSearch(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			if page > 1 {
				if err := coord.ChangePage(ctx, page); err != nil {
					return fmt.Errorf("changing to page %d: %w", page, err)
				}
			}

			snap := coord.Snapshot()
			if jsonOut {
				return format.WriteJSON(cmd.OutOrStdout(), snap.Repos, a.fenced)
			}
			renderSnapshot(cmd.OutOrStdout(), snap, coord.IsFavorite)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page of results to show")
	cmd.Flags().StringVarP(&sortName, "sort", "s", string(github.SortStars), "Sort by stars, forks or updated")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Only repositories in this language")
	cmd.Flags().IntVar(&minStars, "min-stars", 0, "Only repositories with at least this many stars")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "Only repositories created on or after YYYY-MM-DD")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	return cmd
}
