package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/service"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext extracts the authenticated identity from the request
// context. Returns nil if no identity is attached.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityContextKey).(*domain.Identity)
	return identity
}

// RequireAuth is middleware that protects routes requiring authentication.
// A missing bearer token yields 401, an invalid or expired one 403; both
// without a body. On success the decoded identity is injected into the
// request context. The token is stateless, so no user lookup happens here.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		identity, err := auth.ValidateToken(token)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// RateLimit rejects requests exceeding the per-user rate limit with 429.
// It must run inside RequireAuth so the identity is available as the key.
func RateLimit(limiter *service.TokenBucket, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if identity == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !limiter.Allow(identity.ID) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many analysis requests. Please slow down.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS allows the browser frontend, served from a different origin, to call
// the API. Preflight requests are answered directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets conservative response headers on every route.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
