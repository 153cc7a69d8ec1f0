// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/email"
	"github.com/jonathan/resume-screener/internal/screening"
)

// Store is the persistence surface the handlers depend on. *db.DB
// satisfies it.
type Store interface {
	Ping(ctx context.Context) error

	SaveCandidate(ctx context.Context, c *db.Candidate) (uuid.UUID, error)
	ListCandidates(ctx context.Context, f db.CandidateFilter) ([]db.Candidate, int, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, upd db.CandidateUpdate) (bool, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) (bool, error)
	TopCandidatesForOutreach(ctx context.Context, minScore float64, limit int) ([]db.Candidate, error)
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
	CandidateJobRoles(ctx context.Context) ([]db.JobRole, error)
	GetStatistics(ctx context.Context) (*db.Statistics, error)

	CreateJobRequirement(ctx context.Context, req *db.JobRequirement) (*db.JobRequirement, error)
	GetJobRequirement(ctx context.Context, id uuid.UUID) (*db.JobRequirement, error)
	ListJobRequirements(ctx context.Context) ([]db.JobRequirement, error)
	UpdateJobRequirement(ctx context.Context, id uuid.UUID, req *db.JobRequirement) (bool, error)
	DeleteJobRequirement(ctx context.Context, id uuid.UUID) (bool, error)
	EnsureDefaultJobRequirement(ctx context.Context) (*db.JobRequirement, error)
}

// Sender delivers interview invitations. *email.Mailer satisfies it.
type Sender interface {
	SendInvitation(inv email.Invitation) error
}

// Config holds server configuration.
type Config struct {
	Port        int
	CompanyName string
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       Store
	pipeline    *screening.Pipeline
	mailer      Sender
	logger      *zap.Logger
	companyName string
}

// New creates a new server instance.
func New(cfg Config, store Store, pipeline *screening.Pipeline, mailer Sender, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		store:       store,
		pipeline:    pipeline,
		mailer:      mailer,
		logger:      logger,
		companyName: cfg.CompanyName,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /screenings", s.handleCreateScreening)

	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/job-roles", s.handleCandidateJobRoles)
	mux.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	mux.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)

	mux.HandleFunc("POST /outreach", s.handleOutreach)

	mux.HandleFunc("GET /job-requirements", s.handleListJobRequirements)
	mux.HandleFunc("POST /job-requirements", s.handleCreateJobRequirement)
	mux.HandleFunc("PUT /job-requirements/{id}", s.handleUpdateJobRequirement)
	mux.HandleFunc("DELETE /job-requirements/{id}", s.handleDeleteJobRequirement)

	mux.HandleFunc("GET /statistics", s.handleStatistics)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status. The database must answer a
// ping for the service to count as healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
