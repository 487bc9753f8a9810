// Package app wires every state slice and service into one explicitly
// constructed application context. The view layer receives an *App and
// goes through it for all reads and mutations; nothing touches the store
// directly except the slices.
package app

import (
	"sync"
	"time"

	"github.com/heritagexp/heritage-explorer/pkg/authentication"
	"github.com/heritagexp/heritage-explorer/pkg/catalog"
	"github.com/heritagexp/heritage-explorer/pkg/discussions"
	"github.com/heritagexp/heritage-explorer/pkg/favorites"
	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/state"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
	"github.com/heritagexp/heritage-explorer/pkg/users"
)

// Store keys for the slices owned directly by the app
const (
	ThemeKey   = "theme"
	SessionKey = "session"
)

// Theme values
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Modal describes the currently open modal, if any. Ephemeral; never
// persisted.
type Modal struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Config carries the knobs for constructing an App
type Config struct {
	Store        storage.Store
	AuthLatency  time.Duration
	FetchLatency time.Duration
}

// App is the application context: every persisted slice plus the services
// and mutation entry points over them.
type App struct {
	store storage.Store

	theme   *state.Slice[string]
	session *state.Slice[*users.Profile]

	Auth      *authentication.Authenticator
	Catalog   *catalog.Service
	Board     *discussions.Board
	Favorites *favorites.Set

	mu    sync.RWMutex
	modal *Modal
}

// New builds the application context over the given store. Each slice
// hydrates from storage or its seed.
func New(cfg Config) *App {
	registry := users.NewRegistry(cfg.Store)

	a := &App{
		store:     cfg.Store,
		theme:     state.NewSlice(cfg.Store, ThemeKey, ThemeLight),
		session:   state.NewSlice[*users.Profile](cfg.Store, SessionKey, nil),
		Auth:      authentication.NewAuthenticator(registry, nil, cfg.AuthLatency),
		Catalog:   catalog.NewService(cfg.Store, cfg.FetchLatency),
		Board:     discussions.NewBoard(cfg.Store),
		Favorites: favorites.NewSet(cfg.Store),
	}

	logging.App.Info("Application context ready",
		"monuments", len(a.Catalog.Monuments()),
		"tours", len(a.Catalog.Tours()),
		"posts", len(a.Board.List()),
		"session_active", a.Session() != nil)
	return a
}

// Theme returns the current theme
func (a *App) Theme() string {
	return a.theme.Get()
}

// SetTheme sets and persists the theme. Anything other than ThemeDark is
// normalized to ThemeLight.
func (a *App) SetTheme(theme string) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	a.theme.Set(theme)
}

// Session returns the current session profile, or nil when logged out
func (a *App) Session() *users.Profile {
	return a.session.Get()
}

// SetSession stores the profile as the active session. Reloads keep the
// session; there is no expiry and no server-side validation.
func (a *App) SetSession(p users.Profile) {
	a.session.Set(&p)
}

// ClearSession logs the session out
func (a *App) ClearSession() {
	a.session.Set(nil)
}

// AddPost validates nothing; callers validate the form first. The new
// post lands at the head of the list.
func (a *App) AddPost(author, title, body string) discussions.Post {
	return a.Board.Add(author, title, body)
}

// RemovePost deletes a post by id
func (a *App) RemovePost(id string) bool {
	return a.Board.Remove(id)
}

// RemoveMonument deletes a monument by id. The favorites set is left
// untouched; dangling ids are tolerated.
func (a *App) RemoveMonument(id string) bool {
	return a.Catalog.Remove(id)
}

// ToggleFavorite flips the monument id in the favorites set, returning
// the resulting membership
func (a *App) ToggleFavorite(id string) bool {
	return a.Favorites.Toggle(id)
}

// Modal returns the active modal descriptor, or nil
func (a *App) Modal() *Modal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.modal
}

// SetModal opens a modal
func (a *App) SetModal(m Modal) {
	a.mu.Lock()
	a.modal = &m
	a.mu.Unlock()
}

// CloseModal closes any open modal
func (a *App) CloseModal() {
	a.mu.Lock()
	a.modal = nil
	a.mu.Unlock()
}
