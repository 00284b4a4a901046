package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pdfsift/pdfsift/internal/config"
	"github.com/pdfsift/pdfsift/internal/document"
	"github.com/pdfsift/pdfsift/internal/ingest"
	"github.com/pdfsift/pdfsift/internal/search"
	"github.com/pdfsift/pdfsift/internal/usage"
)

// Server is the HTTP API server for pdfsift.
type Server struct {
	router     chi.Router
	pipeline   *ingest.Pipeline
	downloader *ingest.Downloader
	store      *document.Store
	retriever  *search.Retriever
	usage      *usage.Client
	stats      *usage.Stats
	renderer   goldmark.Markdown
	log        *slog.Logger
	cfg        config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(pipeline *ingest.Pipeline, downloader *ingest.Downloader, store *document.Store, retriever *search.Retriever, usageClient *usage.Client, stats *usage.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pipeline:   pipeline,
		downloader: downloader,
		store:      store,
		retriever:  retriever,
		usage:      usageClient,
		stats:      stats,
		// OCR output is table-heavy, so the combined view renders with GFM.
		renderer: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log:      log,
		cfg:      cfg,
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

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/process-pdf", s.handleProcessPDF)
		r.Post("/api/process-pdf-url", s.handleProcessPDFURL)
		r.Post("/api/search-pdf", s.handleSearchPDF)

		r.Get("/api/debug", s.handleDebug)
		r.Get("/api/document", s.handleDocument)
		r.Get("/api/document/html", s.handleDocumentHTML)
		r.Get("/api/stats/ocr", s.handleOCRStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
