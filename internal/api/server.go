// Package api exposes the kanban board HTTP surface: a chi router over the
// board, column and card services with JSON request/response bodies.
package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/services/column"
)

// Server wires the services into an HTTP server.
type Server struct {
	cfg     *config.Config
	db      *sql.DB
	boards  board.Service
	columns column.Service
	cards   card.Service
	metrics *Metrics
}

// NewServer creates a server around the given services. The db handle is
// only used for the health check ping.
func NewServer(cfg *config.Config, db *sql.DB, boards board.Service, columns column.Service, cards card.Service) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		boards:  boards,
		columns: columns,
		cards:   cards,
		metrics: NewMetrics(),
	}
}

// Router builds the chi handler with the full middleware chain and all
// routes mounted under /api.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(s.countRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/boards", s.handleListBoards)
		r.Post("/boards", s.handleCreateBoard)
		r.Get("/boards/{id}", s.handleGetBoard)
		r.Delete("/boards/{id}", s.handleDeleteBoard)

		r.Get("/columns/{board_id}", s.handleListColumns)
		r.Post("/columns", s.handleCreateColumn)
		r.Patch("/columns/{id}", s.handleUpdateColumn)
		r.Delete("/columns/{id}", s.handleDeleteColumn)

		r.Get("/cards/{column_id}", s.handleListCards)
		r.Post("/cards", s.handleCreateCard)
		r.Patch("/cards/{id}", s.handleUpdateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)
	})

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully with a deadline.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	slog.Info("server listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleHealth reports liveness, including a storage ping.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			slog.Error("health check ping failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics returns a snapshot of the server counters.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}
