package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type favoritesResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type toggleResponse struct {
	ID        string `json:"id"`
	Favorited bool   `json:"favorited"`
}

// handleListFavorites implements GET /api/favorites
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	ids := s.app.Favorites.IDs()
	writeJSON(w, http.StatusOK, favoritesResponse{IDs: ids, Count: len(ids)})
}

// handleToggleFavorite implements POST /api/favorites/{id}/toggle. The id
// is not checked against the catalog; favorites may dangle.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	favorited := s.app.ToggleFavorite(id)
	writeJSON(w, http.StatusOK, toggleResponse{ID: id, Favorited: favorited})
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// handleGetTheme implements GET /api/theme
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: s.app.Theme()})
}

// handleSetTheme implements PUT /api/theme
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if !decodeJSON(w, r, &req) {
		return
	}
	s.app.SetTheme(req.Theme)
	writeJSON(w, http.StatusOK, themeResponse{Theme: s.app.Theme()})
}
