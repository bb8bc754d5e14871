// Package api serves grid layouts and rendered figures over HTTP.
//
// # Routes
//
//	GET /healthz                 liveness probe
//	GET /version                 build information
//	GET /v1/grid?n=&align=       layout as JSON
//	GET /v1/grid/{format}?n=...  rendered artifact (svg, png, pdf, json, dot, xlsx, txt)
//
// Rendering routes also accept width, height, title, labels (comma
// separated), style and engine. Errors are JSON objects of the form
// {"code": "...", "message": "..."}; INVALID_* codes map to 400 and every
// other failure to 500.
package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PeterMinin/grid-strategy/pkg/config"
	"github.com/PeterMinin/grid-strategy/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown after the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	defaults config.Config
	logger   *log.Logger
	router   chi.Router
}

// New builds a server. cfg supplies defaults for parameters a request omits.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	s := &Server{runner: runner, defaults: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1/grid", func(r chi.Router) {
		r.Get("/", s.handleLayout)
		r.Get("/{format}", s.handleRender)
	})
	return r
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
