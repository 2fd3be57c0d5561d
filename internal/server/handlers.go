package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ruleFallback backs up the configured feedback generator.
var ruleFallback = feedback.RuleBased{}

// AnalyzeRequest is the request body for /api/analyze.
type AnalyzeRequest struct {
	ResumeURL    string `json:"resume_url" validate:"required,url"`
	JDText       string `json:"jd_text" validate:"required"`
	WithFeedback bool   `json:"with_feedback,omitempty"`
}

// RankRequest is the request body for /api/rank.
type RankRequest struct {
	JDText string `json:"jd_text" validate:"required"`
	TopN   int    `json:"top_n,omitempty" validate:"omitempty,min=1,max=100"`
}

// RankResponse is the response body for /api/rank.
type RankResponse struct {
	Message string `json:"message"`
	types.RankingReport
}

// handleAnalyze runs a single resume-vs-JD comparison.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := s.deps.Analyzer.Analyze(r.Context(), req.ResumeURL, req.JDText)
	if err != nil {
		s.logger.Warn().Err(err).Str("resume_url", req.ResumeURL).Msg("analysis failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.WithFeedback {
		lines, err := s.deps.Feedback.Generate(r.Context(), req.JDText, result)
		if err != nil {
			// A feedback fault must not fail the analysis; fall back to rules.
			s.logger.Warn().Err(err).Msg("feedback generation failed, using rule-based feedback")
			lines, _ = ruleFallback.Generate(r.Context(), req.JDText, result)
		}
		result.Feedback = lines
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRank ranks all stored candidates against a JD.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if s.deps.Store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no candidate store configured")
		return
	}

	candidates, err := s.deps.Store.ListCandidates(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list candidates")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	if len(candidates) == 0 {
		s.jsonResponse(w, http.StatusOK, RankResponse{
			Message: "no resumes available",
			RankingReport: types.RankingReport{
				RankedEntries: []types.RankedEntry{},
			},
		})
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = s.cfg.TopN
	}

	report, err := s.deps.NewRanker(topN).Rank(r.Context(), req.JDText, candidates)
	if err != nil {
		s.logger.Error().Err(err).Msg("ranking failed")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	message := "ranking complete"
	if report.ProcessedCount == 0 {
		message = "no candidates could be processed"
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{Message: message, RankingReport: *report})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
