package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heritagexp/heritage-explorer/pkg/forms"
)

type newPostRequest struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// handleListPosts implements GET /api/posts, most recent first
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Board.List())
}

// handleCreatePost implements POST /api/posts
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req newPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := forms.Discussion(req.Author, req.Title); !errs.Valid() {
		writeJSON(w, http.StatusBadRequest, result{Success: false, Message: errs["form"]})
		return
	}

	post := s.app.AddPost(req.Author, req.Title, req.Body)
	s.collector.RecordPostCreated()
	writeJSON(w, http.StatusCreated, post)
}

// handleDeletePost implements DELETE /api/posts/{id}
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.app.RemovePost(id) {
		writeFailure(w, http.StatusNotFound, "Discussion not found")
		return
	}
	s.collector.RecordPostDeleted()
	w.WriteHeader(http.StatusNoContent)
}
