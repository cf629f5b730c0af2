package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newClearStateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clearstate",
		Short: "Forget favorites, search history and theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Store.Flush(); err != nil {
				return fmt.Errorf("saving state: %w", err)
			}
			a.favorites, a.history, a.theme = nil, nil, nil
			fmt.Fprintln(cmd.OutOrStdout(), "State cleared.")
			return nil
		},
	}
}
