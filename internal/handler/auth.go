package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /api/register
// Request:  {"name":"...","email":"...","password":"..."}
// Response: 201 {"message":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid request body.")
		return
	}

	_, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "validation_error", "All fields are required.")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "conflict", "An account with that email already exists.")
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Registration failed.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// HandleLogin processes a JSON login request.
// POST /api/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"token":"...","user":{...}}
//
// Unknown email and wrong password return the same status and message so the
// endpoint cannot be used for account enumeration; the distinction is logged.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid request body.")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Info("login rejected", "email", req.Email, "reason", err)
			writeError(w, http.StatusBadRequest, "invalid_credentials", "Invalid email or password.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Login failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserDTO(user),
	})
}
