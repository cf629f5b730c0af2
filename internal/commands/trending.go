package commands

import (
	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/format"
)

func (a *App) newTrendingCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show popular repositories created in the past month",
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := a.newCoordinator()
			if err != nil {
				return err
			}
			defer coord.Close()

			if err := coord.Start(cmd.Context()); err != nil {
				return err
			}

			snap := coord.Snapshot()
			if jsonOut {
				return format.WriteJSON(cmd.OutOrStdout(), snap.Repos, a.fenced)
			}
			renderSnapshot(cmd.OutOrStdout(), snap, coord.IsFavorite)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	return cmd
}
