// Package web provides the HTTP API for validating VSME report workbooks.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vsmetools/validator/internal/config"
	"github.com/vsmetools/validator/internal/results"
	"github.com/vsmetools/validator/internal/validation"
	"github.com/vsmetools/validator/internal/web/middleware"
)

// Orchestrator is the validation pipeline the handlers invoke. It is an
// interface so handler tests can substitute a canned pipeline.
type Orchestrator interface {
	Run(ctx context.Context, data []byte, opts validation.Options) results.ConversionResult
}

// Server is the HTTP server for the validation API.
type Server struct {
	orch   Orchestrator
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(orch Orchestrator, cfg *config.Config) *Server {
	s := &Server{
		orch:   orch,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/validate", s.handleValidate)
	s.router.Post("/validate/path", s.handleValidatePath)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
