package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinicflow/internal/domain/entity"
	"clinicflow/internal/service"
	"clinicflow/pkg/jwt"
	"clinicflow/pkg/response"
)

type contextKey string

const UserKey contextKey = "auth_user"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	identities *service.IdentityCache
}

func NewAuthMiddleware(jwtService *jwt.JWTService, identities *service.IdentityCache) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		identities: identities,
	}
}

// Authenticate verifies the bearer token, resolves the identity it names and
// attaches the resolved user to the request context. Ownership checks run in
// the usecases against that user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		user, err := m.identities.Resolve(r.Context(), claims.UserID)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve user")
			return
		}
		if user == nil {
			response.Unauthorized(w, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok
}
