package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stahnma/gh-repo-search/internal/format"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/stahnma/gh-repo-search/internal/pagination"
	"github.com/stahnma/gh-repo-search/internal/view"
)

func renderSnapshot(w io.Writer, s view.Snapshot, isFavorite func(int64) bool) {
	if s.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", s.Error)
	}
	if s.Loading {
		fmt.Fprintln(w, "Loading...")
		return
	}
	if s.Empty {
		if s.EmptyMessage != "" {
			fmt.Fprintln(w, s.EmptyMessage)
		}
		return
	}

	fmt.Fprintln(w, s.Summary)
	fmt.Fprintln(w)
	renderRepos(w, s.Repos, isFavorite)
	if len(s.Controls) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, controlsLine(s.Controls))
	}
}

// renderRepos lists repos with 1-based indexes. Favorites are marked with *.
func renderRepos(w io.Writer, repos []github.Repo, isFavorite func(int64) bool) {
	for i, r := range repos {
		mark := " "
		if isFavorite(r.ID) {
			mark = "*"
		}
		fmt.Fprintf(w, "%2d.%s %s  ★ %s  ⑂ %s  %s\n", i+1, mark, r.FullName,
			format.Number(r.StargazersCount), format.Number(r.ForksCount), r.LanguageOr("-"))
		if desc := r.DescriptionOr(""); desc != "" {
			fmt.Fprintf(w, "     %s\n", desc)
		}
		fmt.Fprintf(w, "     %s", r.HTMLURL)
		if updated := format.Date(r.UpdatedAt); updated != "" {
			fmt.Fprintf(w, "  (updated %s)", updated)
		}
		fmt.Fprintln(w)
	}
}

// controlsLine draws a page window as e.g. "< 1 ... 4 [5] 6 ... 10 >".
// Disabled arrows are left out.
func controlsLine(controls []pagination.Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch c.Kind {
		case pagination.Previous:
			if !c.Disabled {
				parts = append(parts, "<")
			}
		case pagination.Next:
			if !c.Disabled {
				parts = append(parts, ">")
			}
		case pagination.Ellipsis:
			parts = append(parts, "...")
		case pagination.Page:
			if c.Current {
				parts = append(parts, "["+strconv.Itoa(c.Page)+"]")
			} else {
				parts = append(parts, strconv.Itoa(c.Page))
			}
		}
	}
	return strings.Join(parts, " ")
}
