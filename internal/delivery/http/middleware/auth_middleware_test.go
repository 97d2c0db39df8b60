package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicflow/config"
	"clinicflow/internal/domain/entity"
	"clinicflow/pkg/jwt"

	"github.com/google/uuid"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	// The identity cache is never reached for header and token failures.
	m := NewAuthMiddleware(jwtService, nil)
	handler := m.Authenticate(okHandler(t))

	expired := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	expiredToken, err := expired.Generate(uuid.New(), "jane@example.com", "Patient")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc123"},
		{name: "missing token part", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestGetUserFromContext(t *testing.T) {
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Error("expected no user in empty context")
	}

	want := &entity.User{ID: uuid.New(), RoleID: entity.RoleIDDoctor}
	ctx := context.WithValue(context.Background(), UserKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if got.ID != want.ID {
		t.Errorf("user ID = %s, want %s", got.ID, want.ID)
	}
}
