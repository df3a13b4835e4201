package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/toggler/internal/presentation/graph"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves stored artifacts over HTTP.
type Server struct {
	Store    ports.ArtifactStore
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithGatherer selects the registry exposed on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates the HTTP handler for an artifact store.
func NewHandler(store ports.ArtifactStore, opts ...Option) http.Handler {
	server := &Server{
		Store:    store,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/health", server.Health)
	r.Get("/artifacts", server.ListArtifacts)
	r.Get("/artifacts/{id}", server.GetArtifact)
	r.Get("/artifacts/{id}/graph", server.GetGraph)
	r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// ListArtifacts handles GET /artifacts.
func (s *Server) ListArtifacts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("List artifacts failed", "error", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, map[string][]string{"artifacts": ids})
}

// GetArtifact handles GET /artifacts/{id}.
func (s *Server) GetArtifact(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.load(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, artifact)
}

// GetGraph handles GET /artifacts/{id}/graph, rendering the compiled graph as Mermaid.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, graph.GenerateMermaid(artifact.Graph, nil)); err != nil {
		s.Logger.Error("Graph response write failed", "error", err)
	}
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*domain.Artifact, bool) {
	id := chi.URLParam(r, "id")
	artifact, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrArtifactNotFound) {
			http.Error(w, "Artifact not found", http.StatusNotFound)
			return nil, false
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Load artifact failed", "id", id, "error", err)
		return nil, false
	}
	return artifact, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
