package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/format"
	"github.com/stahnma/gh-repo-search/internal/github"
)

func (a *App) newFavoritesCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "List and manage favorite repositories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs := a.Favorites().List()
			w := cmd.OutOrStdout()
			if jsonOut {
				return format.WriteJSON(w, favs, a.fenced)
			}
			if len(favs) == 0 {
				fmt.Fprintln(w, "No favorites yet")
				return nil
			}
			fmt.Fprintf(w, "Your saved favorite repositories (%d)\n\n", len(favs))
			renderRepos(w, favs, func(int64) bool { return true })
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print favorites as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "add <owner/name>",
		Short: "Add a repository to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.lookupRepo(cmd, args[0])
			if err != nil {
				return err
			}
			a.Favorites().Add(repo)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", repo.FullName)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <owner/name|id>",
		Short: "Remove a repository from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, ok := a.findFavorite(args[0])
			if !ok {
				return fmt.Errorf("%s is not a favorite", args[0])
			}
			a.Favorites().Remove(repo.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", repo.FullName)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <owner/name>",
		Short: "Add a repository to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, ok := a.findFavorite(args[0])
			if !ok {
				var err error
				if repo, err = a.lookupRepo(cmd, args[0]); err != nil {
					return err
				}
			}
			if a.Favorites().Toggle(repo) {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", repo.FullName)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", repo.FullName)
			}
			return nil
		},
	})

	return cmd
}

func (a *App) lookupRepo(cmd *cobra.Command, fullName string) (github.Repo, error) {
	if err := a.ensureClient(); err != nil {
		return github.Repo{}, err
	}
	return github.GetRepository(cmd.Context(), a.GHClient, fullName)
}

// findFavorite matches a favorite by full name or numeric id.
func (a *App) findFavorite(ref string) (github.Repo, bool) {
	id, idErr := strconv.ParseInt(ref, 10, 64)
	for _, r := range a.Favorites().List() {
		if r.FullName == ref || (idErr == nil && r.ID == id) {
			return r, true
		}
	}
	return github.Repo{}, false
}
