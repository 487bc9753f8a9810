// Package httpapi serves the application over a JSON API. Handlers only
// read through the app context and invoke its mutation entry points.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heritagexp/heritage-explorer/pkg/app"
	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/metrics"
)

// Config holds the HTTP server configuration
type Config struct {
	ListenAddr string
	Port       int

	// Rate limit for the credential endpoints, per client IP
	AuthRatePerMinute int
	AuthBurst         int
}

// Server is the HTTP façade over the application context
type Server struct {
	app       *app.App
	collector *metrics.Collector
	limiter   *authLimiter

	httpServer *http.Server
	startTime  time.Time
	requests   atomic.Int64
}

// New creates a Server over the given application context
func New(cfg Config, application *app.App, collector *metrics.Collector) *Server {
	if cfg.AuthRatePerMinute == 0 {
		cfg.AuthRatePerMinute = 10
	}
	if cfg.AuthBurst == 0 {
		cfg.AuthBurst = 5
	}

	s := &Server{
		app:       application,
		collector: collector,
		limiter:   newAuthLimiter(cfg.AuthRatePerMinute, cfg.AuthBurst),
		startTime: time.Now(),
	}
	s.collector.SetCatalogSize(len(application.Catalog.Monuments()))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ListenAddr, cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the route tree
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.collector.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.With(s.limiter.middleware).Post("/login", s.handleLogin)
		r.With(s.limiter.middleware).Post("/register", s.handleRegister)
		r.Post("/logout", s.handleLogout)
		r.Get("/me", s.handleMe)
	})

	// Content routes sit behind the session guard
	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Route("/api/monuments", func(r chi.Router) {
			r.Get("/", s.handleListMonuments)
			r.Get("/filters", s.handleMonumentFilters)
			r.Delete("/{id}", s.handleDeleteMonument)
		})

		r.Get("/api/tours", s.handleListTours)

		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Post("/", s.handleCreatePost)
			r.Delete("/{id}", s.handleDeletePost)
		})

		r.Route("/api/favorites", func(r chi.Router) {
			r.Get("/", s.handleListFavorites)
			r.Post("/{id}/toggle", s.handleToggleFavorite)
		})

		r.Get("/api/theme", s.handleGetTheme)
		r.Put("/api/theme", s.handleSetTheme)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListenAndServe starts serving and blocks until shutdown
func (s *Server) ListenAndServe() error {
	logging.App.Info("HTTP server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// RequestCount returns the number of requests handled so far
func (s *Server) RequestCount() int64 {
	return s.requests.Load()
}

// StartTime returns when the server was created
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// SessionActive reports whether a session is currently stored
func (s *Server) SessionActive() bool {
	return s.app.Session() != nil
}
