package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stahnma/gh-repo-search/internal/format"
	"github.com/stahnma/gh-repo-search/internal/github"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatMarkdown, FormatHTML, FormatYAML}

// ParseFormat accepts a format name or its file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// Filename returns the dated download name, e.g. github-favorites-2024-03-15.csv.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("github-favorites-%s.%s", now.Format(github.DateLayout), f.Ext())
}

// Record is the flattened form of a repository used by the structured
// formats. Missing description and language stay null.
type Record struct {
	Name        string    `json:"name" yaml:"name"`
	FullName    string    `json:"full_name" yaml:"full_name"`
	URL         string    `json:"url" yaml:"url"`
	Description *string   `json:"description" yaml:"description"`
	Stars       int       `json:"stars" yaml:"stars"`
	Forks       int       `json:"forks" yaml:"forks"`
	Language    *string   `json:"language" yaml:"language"`
	Owner       string    `json:"owner" yaml:"owner"`
	OwnerURL    string    `json:"owner_url" yaml:"owner_url"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Records flattens repos in order.
func Records(repos []github.Repo) []Record {
	out := make([]Record, 0, len(repos))
	for _, r := range repos {
		out = append(out, Record{
			Name:        r.Name,
			FullName:    r.FullName,
			URL:         r.HTMLURL,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Language:    r.Language,
			Owner:       r.Owner.Login,
			OwnerURL:    r.Owner.HTMLURL,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out
}

// Render produces the document for f.
func Render(f Format, repos []github.Repo, now time.Time) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(repos)
	case FormatCSV:
		return CSV(repos), nil
	case FormatMarkdown:
		return Markdown(repos, now), nil
	case FormatHTML:
		return HTML(repos, now)
	case FormatYAML:
		return YAML(repos)
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// JSON renders an indented array of records.
func JSON(repos []github.Repo) ([]byte, error) {
	data, err := json.MarshalIndent(Records(repos), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return data, nil
}

// YAML renders a sequence of records.
func YAML(repos []github.Repo) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Records(repos)); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVHeader is the fixed header row.
var CSVHeader = []string{"Name", "Full Name", "URL", "Description", "Stars", "Forks", "Language", "Owner", "Owner URL", "Updated At"}

// CSV renders the header and one row per repository. Every data cell is
// quoted with embedded quotes doubled. Rows are joined by "\n" with no
// trailing newline.
func CSV(repos []github.Repo) []byte {
	lines := make([]string, 0, len(repos)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, r := range repos {
		cells := []string{
			r.Name,
			r.FullName,
			r.HTMLURL,
			r.DescriptionOr("N/A"),
			strconv.Itoa(r.StargazersCount),
			strconv.Itoa(r.ForksCount),
			r.LanguageOr("N/A"),
			r.Owner.Login,
			r.Owner.HTMLURL,
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for i, c := range cells {
			cells[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// Markdown renders a document with one section per repository.
func Markdown(repos []github.Repo, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("# My GitHub Favorites\n\n")
	fmt.Fprintf(&b, "Exported on %s\n", format.Date(now))
	for _, r := range repos {
		fmt.Fprintf(&b, "\n## [%s](%s)\n\n", r.FullName, r.HTMLURL)
		b.WriteString(r.DescriptionOr("No description"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "- ⭐ Stars: %s\n", format.Number(r.StargazersCount))
		fmt.Fprintf(&b, "- 🍴 Forks: %s\n", format.Number(r.ForksCount))
		if lang := r.LanguageOr(""); lang != "" {
			fmt.Fprintf(&b, "- 💻 Language: %s\n", lang)
		}
		fmt.Fprintf(&b, "- 👤 Owner: [@%s](%s)\n", r.Owner.Login, r.Owner.HTMLURL)
		fmt.Fprintf(&b, "- 🔄 Updated: %s\n", format.Date(r.UpdatedAt))
	}
	return []byte(b.String())
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders the Markdown document to an HTML fragment.
func HTML(repos []github.Repo, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(Markdown(repos, now), &buf); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), nil
}
