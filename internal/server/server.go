// Package server exposes the graph query surface over HTTP for remote
// tooling. It serves read-only structural queries, validation findings,
// and export formats from an immutable snapshot, plus one explicit rebuild
// endpoint that swaps in a fresh snapshot.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hexmap-dev/hexmap/validate"
)

// Config holds server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Validation configures the rule run behind /graph/findings.
	Validation validate.Options

	// Timeouts; zero values take the defaults below.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server serves graph queries over HTTP.
type Server struct {
	holder *Holder
	logger *zap.Logger
	opts   validate.Options
	http   *http.Server
}

// New creates a server around a snapshot holder.
func New(cfg Config, holder *Holder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}

	s := &Server{
		holder: holder,
		logger: logger,
		opts:   cfg.Validation,
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Router assembles the route tree. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(s.logger))
	r.Use(Recovery(s.logger))

	r.Get("/health", s.handleHealth)
	r.Route("/graph", func(r chi.Router) {
		r.Get("/", s.handleSummary)
		r.Get("/nodes", s.handleNodes)
		r.Get("/edges", s.handleEdges)
		r.Get("/findings", s.handleFindings)
	})
	r.Get("/export/{format}", s.handleExport)
	r.Post("/rebuild", s.handleRebuild)

	return r
}

// ListenAndServe starts serving and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
