package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/service"
)

// AnalyzeHandler handles the authenticated analysis pipeline.
type AnalyzeHandler struct {
	analysis *service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysis *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysis: analysis}
}

// HandleAnalyze compares a resume against a job description via the upstream
// model and returns the structured result.
// POST /api/analyze (bearer-protected)
// Request:  {"jobDescription":"...","resumeText":"..."}
// Response: 200 AnalysisResult
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid request body.")
		return
	}

	identity := IdentityFromContext(r.Context())

	result, err := h.analysis.Analyze(r.Context(), req.JobDescription, req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "validation_error", "Both Job Description and Resume text are required.")
		case errors.Is(err, domain.ErrUpstreamTimeout):
			slog.Error("analysis timed out", "user", identity.ID, "error", err)
			writeError(w, http.StatusGatewayTimeout, "upstream_timeout", "Analysis timed out. Please try again.")
		case errors.Is(err, domain.ErrMalformedResponse):
			slog.Error("malformed analysis response", "user", identity.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "malformed_response", "Failed to analyze resume.")
		default:
			slog.Error("analysis failed", "user", identity.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "upstream_failed", "Failed to analyze resume.")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
