package httpapi

import (
	"errors"
	"net/http"

	"github.com/heritagexp/heritage-explorer/pkg/authentication"
	"github.com/heritagexp/heritage-explorer/pkg/forms"
	"github.com/heritagexp/heritage-explorer/pkg/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// handleLogin implements POST /api/auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := forms.Login(req.Email, req.Password); !errs.Valid() {
		writeJSON(w, http.StatusBadRequest, result{Success: false, Errors: errs})
		return
	}

	profile, err := s.app.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.collector.RecordLogin("failure")
		status := http.StatusUnauthorized
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		writeFailure(w, status, authentication.Message(err))
		return
	}

	s.collector.RecordLogin("success")
	s.app.SetSession(profile)
	writeJSON(w, http.StatusOK, result{Success: true, User: &profile})
}

// handleRegister implements POST /api/auth/register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := forms.Registration(req.Name, req.Email, req.Password, req.ConfirmPassword); !errs.Valid() {
		writeJSON(w, http.StatusBadRequest, result{Success: false, Errors: errs})
		return
	}

	profile, err := s.app.Auth.Register(r.Context(), authentication.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     users.Role(req.Role),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, authentication.ErrEmailTaken) {
			status = http.StatusConflict
		}
		writeFailure(w, status, authentication.Message(err))
		return
	}

	s.collector.RecordRegistration()
	s.app.SetSession(profile)
	writeJSON(w, http.StatusCreated, result{Success: true, User: &profile})
}

// handleLogout implements POST /api/auth/logout
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.app.ClearSession()
	w.WriteHeader(http.StatusNoContent)
}

// handleMe implements GET /api/auth/me
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	session := s.app.Session()
	if session == nil {
		writeFailure(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	writeJSON(w, http.StatusOK, result{Success: true, User: session})
}
