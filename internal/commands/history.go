package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			entries := a.History().List()
			if len(entries) == 0 {
				fmt.Fprintln(w, "No recent searches")
				return nil
			}
			for i, q := range entries {
				fmt.Fprintf(w, "%2d. %s\n", i+1, q)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <query>",
		Short: "Remove one query from history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.History().Remove(strings.Join(args, " "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear search history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.History().Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return cmd
}
