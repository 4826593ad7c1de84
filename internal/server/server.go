// Package server exposes the encoding pipeline as a JSON HTTP API.
//
// The API serves machine-readable endpoints under /api/v1 plus the usual
// operational endpoints (/healthz, /version). Image endpoints respond with
// strong ETags derived from the rendered bytes, and successful GET
// responses are cached through the runner's cache backend so repeated
// classroom requests for the same waveform never re-render.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/EvapeGT/NetCom/pkg/pipeline"
)

// Config collects the server dependencies. The zero value is usable for
// tests: every field has a working default.
type Config struct {
	// Addr is the listen address, host:port. Defaults to ":8080".
	Addr string

	// Runner executes pipeline requests. Defaults to an uncached runner.
	Runner *pipeline.Runner

	// Logger receives request logs. Defaults to the standard logger.
	Logger *log.Logger

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout time.Duration
}

// Server is the HTTP API server.
type Server struct {
	addr            string
	runner          *pipeline.Runner
	logger          *log.Logger
	shutdownTimeout time.Duration
	http            *http.Server
}

// New creates a server with its routes registered.
func New(cfg Config) *Server {
	s := &Server{
		addr:            cfg.Addr,
		runner:          cfg.Runner,
		logger:          cfg.Logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.addr == "" {
		s.addr = ":8080"
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/schemes", s.handleSchemes)
		r.Post("/encode", s.handleEncode)
		r.Post("/waveform", s.handleWaveform)
		r.Get("/waveform.svg", s.handleWaveformImage(pipeline.FormatSVG))
		r.Get("/waveform.png", s.handleWaveformImage(pipeline.FormatPNG))
		r.Get("/waveform.txt", s.handleWaveformImage(pipeline.FormatText))
		r.Get("/diagram.svg", s.handleDiagram)
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "timeout", s.shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
