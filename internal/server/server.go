// Package server exposes assembled level geometry to the browser viewer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"sm64-collision-inspector/internal/level"
	"sm64-collision-inspector/internal/source"
	"sm64-collision-inspector/pkg/formats"
)

// Config holds server settings.
type Config struct {
	Addr      string
	StaticDir string
	Variant   formats.Variant
}

// Server serves the viewer's JSON API and static files.
type Server struct {
	src     *source.Set
	catalog level.Catalog
	cfg     Config
	log     *zap.Logger
	httpSrv *http.Server
}

// New creates a viewer server.
func New(src *source.Set, catalog level.Catalog, cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{src: src, catalog: catalog, cfg: cfg, log: log}
	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/levels", s.handleLevels)
	mux.HandleFunc("GET /api/levels/{name}", s.handleLevel)
	if s.cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
	return s.withCORS(s.withLogging(mux))
}

// ListenAndServe serves until the context is canceled, then shuts down
// gracefully within the given timeout.
func (s *Server) ListenAndServe(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("viewer server listening", zap.String("addr", s.cfg.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	err := <-errCh
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.src.Levels()
	if err != nil {
		s.log.Error("listing levels", zap.Error(err))
		http.Error(w, "listing levels failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"levels": levels})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	variant := s.cfg.Variant
	if q := r.URL.Query().Get("variant"); q != "" {
		v, err := formats.ParseVariant(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		variant = v
	}

	builder := level.NewBuilder(s.src, s.catalog, variant, s.log)
	lvl, err := builder.Build(name)
	if err != nil {
		if errors.Is(err, formats.ErrNoTriangles) {
			http.Error(w, "level has no collision triangles", http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("building level", zap.String("level", name), zap.Error(err))
		http.Error(w, "level not found", http.StatusNotFound)
		return
	}

	writeJSON(w, lvl.ToPayload())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// withCORS mirrors the permissive headers the original viewer server sent,
// so the viewer can be developed from a different origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if strings.HasPrefix(r.URL.Path, "/api/") {
			s.log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)))
		}
	})
}
