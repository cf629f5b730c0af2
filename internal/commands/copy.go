package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/export"
)

func (a *App) newCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy favorite repository links to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs := a.Favorites().List()
			if len(favs) == 0 {
				return errors.New("no favorites to copy")
			}
			if !export.CopyLinks(a.Clipboard, favs) {
				return errors.New("failed to copy links to clipboard")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d links to clipboard.\n", len(favs))
			return nil
		},
	}
}
