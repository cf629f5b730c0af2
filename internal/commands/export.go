package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repo-search/internal/export"
	"github.com/stahnma/gh-repo-search/internal/search"
)

func (a *App) newExportCommand() *cobra.Command {
	var (
		formatName string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "export [flags]",
		Short: "Export favorites as JSON, CSV, Markdown, HTML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			favs := a.Favorites().List()
			if len(favs) == 0 {
				return fmt.Errorf("no favorites to export")
			}
			data, err := export.Render(f, favs, a.now())
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = export.Filename(f, a.now())
			}
			if err := writeFile(output, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d repositories to %s\n", len(favs), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatJSON), "Export format: json, csv, markdown, html or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout (default github-favorites-<date>.<ext>)")
	return cmd
}

// ExportTrending loads the trending feed and writes it to w in format f.
func (a *App) ExportTrending(ctx context.Context, w io.Writer, f export.Format) error {
	if err := a.ensureClient(); err != nil {
		return err
	}

	loader := search.NewLoader(a.GHClient)
	if err := loader.Load(ctx); err != nil {
		return fmt.Errorf("loading trending repositories: %w", err)
	}
	data, err := export.Render(f, loader.Feed().Repos, a.now())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
