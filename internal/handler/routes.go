package handler

import (
	"net/http"

	"github.com/atstailor/resume-tailor/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, analysis *service.AnalysisService, limiter *service.TokenBucket) {
	authHandler := NewAuthHandler(auth)
	analyzeHandler := NewAnalyzeHandler(analysis)

	mux.HandleFunc("GET /{$}", HandleRoot)
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/parse-pdf", HandleParsePDF)

	mux.Handle("POST /api/analyze",
		RequireAuth(auth, RateLimit(limiter, http.HandlerFunc(analyzeHandler.HandleAnalyze))))
}
