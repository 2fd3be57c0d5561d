// Package server provides the HTTP REST API for the resume matcher.
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

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer runs one resume-vs-JD comparison.
type Analyzer interface {
	Analyze(ctx context.Context, resumeURL, jdText string) (*types.AnalysisResult, error)
}

// Ranker ranks a candidate batch against a JD.
type Ranker interface {
	Rank(ctx context.Context, jdText string, candidates []types.CandidateRecord) (*types.RankingReport, error)
}

// Config holds server configuration.
type Config struct {
	Port        int
	TopN        int
	Concurrency int
}

// Deps are the collaborators the server exposes over HTTP. Store and
// Feedback are optional; without a store /api/rank reports no data, without
// a feedback generator rule-based feedback is used.
type Deps struct {
	Analyzer  Analyzer
	NewRanker func(topN int) Ranker
	Store     store.CandidateStore
	Feedback  feedback.Generator
	Logger    zerolog.Logger
}

// Server is the HTTP front end over the matching core.
type Server struct {
	httpServer *http.Server
	cfg        Config
	deps       Deps
	validate   *validator.Validate
	logger     zerolog.Logger
}

// New creates a server instance.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if deps.NewRanker == nil {
		return nil, fmt.Errorf("ranker factory is required")
	}
	if deps.Feedback == nil {
		deps.Feedback = feedback.RuleBased{}
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.TopN == 0 {
		cfg.TopN = 10
	}

	s := &Server{
		cfg:      cfg,
		deps:     deps,
		validate: validator.New(),
		logger:   deps.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/rank", s.handleRank)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Batch ranking can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the routed handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// withLogging logs every request with duration and status.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// errorResponse writes a JSON error body.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
