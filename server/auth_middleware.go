package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user ID
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyClaims stores parsed token claims
	ContextKeyClaims ContextKey = "claims"
)

// RequireAuth is middleware that validates a Bearer access token.
// Used for every API route except registration and the token endpoints.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				s.writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided", nil)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				s.writeError(w, http.StatusUnauthorized, "Invalid Authorization header format", nil)
				return
			}

			claims, err := s.tokens.Verify(parts[1])
			if err != nil {
				message := "Given token not valid for any token type"
				if errors.Is(err, apperrors.ErrTokenExpired) {
					message = "Token is expired"
				}
				s.writeError(w, http.StatusUnauthorized, message, nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// userIDFrom returns the authenticated user ID injected by RequireAuth.
func userIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(ContextKeyUserID).(string)
	return userID
}

// claimsFrom returns the parsed token claims injected by RequireAuth.
func claimsFrom(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(ContextKeyClaims).(*token.Claims)
	return claims
}
