package export

import (
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/stahnma/gh-repo-search/internal/github"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Links returns one "<full_name>: <url>" line per repository.
func Links(repos []github.Repo) string {
	lines := make([]string, len(repos))
	for i, r := range repos {
		lines[i] = r.FullName + ": " + r.HTMLURL
	}
	return strings.Join(lines, "\n")
}

// CopyLinks copies Links(repos) to cb and reports success. Clipboard
// failures are logged, not returned.
func CopyLinks(cb Clipboard, repos []github.Repo) bool {
	if err := cb.WriteAll(Links(repos)); err != nil {
		slog.Warn("Failed to copy to clipboard", "err", err)
		return false
	}
	return true
}
