package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/repository/sqlite"
	"github.com/atstailor/resume-tailor/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "New User", "new@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password must not be stored in plain text")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "User 1", "dup@example.com", "password123")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err = auth.Register(ctx, "User 2", "dup@example.com", "password456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@b.com", "password123"},
		{"empty email", "Name", "", "password123"},
		{"empty password", "Name", "a@b.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.userName, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Login User", "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.Email != "login@example.com" {
		t.Fatalf("expected user email login@example.com, got %s", user.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "User", "wrongpw@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err = auth.Login(ctx, "wrongpw@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := auth.Login(ctx, "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_JWT_GenerateAndValidate(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "JWT User", "jwt@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, _, err := auth.Login(ctx, "jwt@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if identity.ID != user.ID {
		t.Fatalf("expected user ID %s, got %s", user.ID, identity.ID)
	}
	if identity.Email != "jwt@example.com" {
		t.Fatalf("expected email jwt@example.com, got %s", identity.Email)
	}
	if identity.Name != "JWT User" {
		t.Fatalf("expected name 'JWT User', got %s", identity.Name)
	}
}

func TestAuthService_JWT_InvalidToken(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_JWT_TamperedToken(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Tamper", "tamper@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, _, err := auth.Login(ctx, "tamper@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Tamper with the token by flipping several characters in the signature.
	tampered := token[:len(token)-5] + "XXXXX"
	_, err = auth.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestAuthService_JWT_ExpiredToken(t *testing.T) {
	auth := newTestAuthService(t)

	// Sign a token with the test secret but an expiry in the past.
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "some-user-id",
		"email": "expired@example.com",
		"name":  "Expired",
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = auth.ValidateToken(expired)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthService_JWT_WrongSecret(t *testing.T) {
	auth1 := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth1.Register(ctx, "Secret", "secret@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, _, err := auth1.Login(ctx, "secret@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Create a second auth service with a different secret.
	dbPath := filepath.Join(t.TempDir(), "test2.db")
	db2, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB2: %v", err)
	}
	defer db2.Close()
	if err := db2.Migrate(ctx); err != nil {
		t.Fatalf("Migrate DB2: %v", err)
	}
	auth2 := service.NewAuthService(db2.Users(), "different-secret", 4)

	_, err = auth2.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}
