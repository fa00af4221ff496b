// Package prefs persists lightweight UI preferences (color theme, sidebar
// state) in a kv.Store, surviving restarts independently of the session.
package prefs

import (
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/kv"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	themeKey   = "ledger_book_theme"
	sidebarKey = "ledger_book_sidebar_collapsed"
)

// Store reads and writes UI preferences. Unknown or missing stored values
// fall back to the defaults (light theme, expanded sidebar).
type Store struct {
	kv kv.Store
}

// NewStore creates a preferences store backed by the given key-value store.
func NewStore(store kv.Store) *Store {
	if store == nil {
		panic("prefs: kv store is required")
	}
	return &Store{kv: store}
}

// Theme returns the stored theme, defaulting to light.
func (s *Store) Theme() Theme {
	raw, ok, err := s.kv.Get(themeKey)
	if err != nil || !ok {
		return ThemeLight
	}
	if Theme(raw) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme stores the theme. Anything other than dark is stored as light.
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return s.kv.Set(themeKey, string(theme))
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *Store) ToggleTheme() (Theme, error) {
	next := ThemeDark
	if s.Theme() == ThemeDark {
		next = ThemeLight
	}
	return next, s.SetTheme(next)
}

// SidebarCollapsed reports whether the sidebar is collapsed, defaulting to
// expanded.
func (s *Store) SidebarCollapsed() bool {
	raw, ok, err := s.kv.Get(sidebarKey)
	if err != nil || !ok {
		return false
	}
	collapsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return collapsed
}

// SetSidebarCollapsed stores the sidebar state.
func (s *Store) SetSidebarCollapsed(collapsed bool) error {
	return s.kv.Set(sidebarKey, strconv.FormatBool(collapsed))
}

// ToggleSidebar flips the sidebar state and returns the new value.
func (s *Store) ToggleSidebar() (bool, error) {
	next := !s.SidebarCollapsed()
	return next, s.SetSidebarCollapsed(next)
}
