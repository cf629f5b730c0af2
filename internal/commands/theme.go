package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/collections"
)

func (a *App) newThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := a.Theme()
			if len(args) == 1 {
				switch args[0] {
				case "toggle":
					theme.Toggle()
				case string(collections.Light), string(collections.Dark):
					theme.Set(collections.ThemeName(args[0]))
				default:
					return fmt.Errorf("invalid theme %q (want light, dark or toggle)", args[0])
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.Name())
			return nil
		},
	}
	return cmd
}
