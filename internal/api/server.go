package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/knowledgehub/chapterize/internal/config"
	"github.com/knowledgehub/chapterize/internal/pipeline"
)

// Server is the HTTP API server for chapterize.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	overrides    *config.Overrides
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, overrides *config.Overrides, log *slog.Logger, cfg config.Config) *Server {
	if overrides == nil {
		overrides = &config.Overrides{}
	}
	s := &Server{
		orchestrator: orch,
		overrides:    overrides,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/split", s.handleSplit)
		r.Get("/api/split/{jobID}/status", s.handleSplitStatus)
		r.Post("/api/split/batch", s.handleBatchSplit)

		r.Get("/api/books", s.handleListBooks)
		r.Get("/api/books/{book}/manifest", s.handleBookManifest)
		r.Delete("/api/books/{book}", s.handleDeleteBook)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
