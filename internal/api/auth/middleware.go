package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// Middleware extracts the token from "Authorization: Bearer <token>",
// verifies it and injects the claims into the request context. Requests
// without a valid token are rejected with 401 before any handler runs.
func Middleware(s *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				sendUnauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				sendUnauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := s.Verify(parts[1])
			if err != nil {
				sendUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext extracts verified claims from the request context.
func GetClaimsFromContext(r *http.Request) (*jwt.RegisteredClaims, error) {
	claims, ok := r.Context().Value(ClaimsContextKey).(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.New("no claims found in context")
	}
	return claims, nil
}

func sendUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
