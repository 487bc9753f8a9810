package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heritagexp/heritage-explorer/pkg/catalog"
)

type monumentsResponse struct {
	Monuments []catalog.Monument `json:"monuments"`
	Total     int                `json:"total"`
}

type filtersResponse struct {
	States []string `json:"states"`
	Eras   []string `json:"eras"`
}

// handleListMonuments implements GET /api/monuments with optional q,
// state, and era query params. Empty categorical params mean "all".
func (s *Server) handleListMonuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	stateFilter := r.URL.Query().Get("state")
	eraFilter := r.URL.Query().Get("era")
	if stateFilter == "" {
		stateFilter = catalog.FilterAll
	}
	if eraFilter == "" {
		eraFilter = catalog.FilterAll
	}

	monuments := s.app.Catalog.Search(q, stateFilter, eraFilter)
	writeJSON(w, http.StatusOK, monumentsResponse{Monuments: monuments, Total: len(monuments)})
}

// handleMonumentFilters implements GET /api/monuments/filters, returning
// the distinct state and era values for filter population.
func (s *Server) handleMonumentFilters(w http.ResponseWriter, r *http.Request) {
	monuments := s.app.Catalog.Monuments()
	writeJSON(w, http.StatusOK, filtersResponse{
		States: catalog.States(monuments),
		Eras:   catalog.Eras(monuments),
	})
}

// handleDeleteMonument implements DELETE /api/monuments/{id}
func (s *Server) handleDeleteMonument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.app.RemoveMonument(id) {
		writeFailure(w, http.StatusNotFound, "Monument not found")
		return
	}
	s.collector.SetCatalogSize(len(s.app.Catalog.Monuments()))
	w.WriteHeader(http.StatusNoContent)
}

// handleListTours implements GET /api/tours
func (s *Server) handleListTours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Catalog.Tours())
}
