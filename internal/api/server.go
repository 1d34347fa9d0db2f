package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/plainterms/legal-analyzer/internal/analyzer"
	"github.com/plainterms/legal-analyzer/internal/auth"
	"github.com/plainterms/legal-analyzer/internal/storage"
)

// ServerConfig holds the dependencies wired in by main.
type ServerConfig struct {
	DB        *sql.DB
	JWTSecret string
	Analyzer  *analyzer.Analyzer
	Logger    *zap.Logger
}

type Server struct {
	router *chi.Mux
	logger *zap.Logger

	analyzer    *analyzer.Analyzer
	authService auth.Service

	projectRepo  storage.ProjectRepository
	documentRepo storage.DocumentRepository
	reportRepo   storage.ReportRepository
}

func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authConfig := auth.DefaultConfig()
	if cfg.JWTSecret != "" {
		authConfig.SecretKey = cfg.JWTSecret
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:       r,
		logger:       logger,
		analyzer:     cfg.Analyzer,
		authService:  auth.NewJWTService(authConfig, auth.NewPostgresRepository(cfg.DB)),
		projectRepo:  storage.NewPostgresProjectRepository(cfg.DB),
		documentRepo: storage.NewPostgresDocumentRepository(cfg.DB),
		reportRepo:   storage.NewPostgresReportRepository(cfg.DB),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	authHandlers := auth.NewHandlers(s.authService)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth routes (public)
		r.Post("/auth/register", authHandlers.Register)
		r.Post("/auth/login", authHandlers.Login)

		// Stateless analysis (public)
		r.Post("/analyze", s.handleAnalyzeText)
		r.Post("/quick-analyze", s.handleQuickAnalyze)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.authService))

			r.Get("/auth/me", authHandlers.Me)

			// Projects
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", s.handleListProjects)
				r.Post("/", s.handleCreateProject)
				r.Get("/{projectID}", s.handleGetProject)
				r.Delete("/{projectID}", s.handleDeleteProject)

				// Documents
				r.Post("/{projectID}/documents", s.handleUpload)
				r.Get("/{projectID}/documents", s.handleListDocuments)
				r.Delete("/{projectID}/documents/{documentID}", s.handleDeleteDocument)

				// Analysis
				r.Post("/{projectID}/documents/{documentID}/analyze", s.handleAnalyzeDocument)
				r.Get("/{projectID}/documents/{documentID}/report", s.handleGetReport)
				r.Get("/{projectID}/documents/{documentID}/reports", s.handleListReports)
			})
		})
	})

	// Serve static files for frontend
	s.router.Handle("/*", http.FileServer(http.Dir("web/dist")))
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
