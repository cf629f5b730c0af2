package collections

import (
	"log/slog"
	"strings"

	"github.com/stahnma/gh-repo-search/internal/state"
	"github.com/stahnma/gh-repo-search/internal/storage"
)

// ThemeKey is the storage key of the theme preference.
const ThemeKey = "github-search-theme"

// ThemeName is a presentation theme.
type ThemeName string

const (
	Light ThemeName = "light"
	Dark  ThemeName = "dark"
)

// Theme is the persisted light/dark preference. It is read synchronously
// on construction so the first render already has the right value.
type Theme struct {
	state.Notifier

	store storage.Store
	name  ThemeName
}

// NewTheme loads the preference, defaulting to Dark.
func NewTheme(store storage.Store) *Theme {
	name := Dark
	if raw, ok := store.Get(ThemeKey); ok && ThemeName(strings.Trim(raw, `"`)) == Light {
		name = Light
	}
	return &Theme{store: store, name: name}
}

// Name returns the current theme.
func (t *Theme) Name() ThemeName {
	return t.name
}

// Set changes the theme and persists it.
func (t *Theme) Set(name ThemeName) {
	if name != Light {
		name = Dark
	}
	t.name = name
	if err := t.store.Set(ThemeKey, string(name)); err != nil {
		slog.Warn("Failed to save theme", "err", err)
	}
	t.Notify()
}

// Toggle flips between light and dark and returns the new theme.
func (t *Theme) Toggle() ThemeName {
	if t.name == Dark {
		t.Set(Light)
	} else {
		t.Set(Dark)
	}
	return t.name
}
