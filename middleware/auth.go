package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// TokenChecker reports whether a token has been revoked by logout.
type TokenChecker interface {
	IsRevoked(token string) bool
}

// ClaimsFrom extracts the authenticated caller's claims from a request
// context, if any.
func ClaimsFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// RequireAuth verifies the bearer token and attaches its claims to the
// request context. A missing credential yields 401; an invalid, expired or
// revoked one yields 403.
func RequireAuth(revocations TokenChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(r, revocations)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches claims when a valid bearer token is present and
// passes the request through unauthenticated otherwise. It never rejects.
func OptionalAuth(revocations TokenChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := authenticate(r, revocations); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), UserContextKey, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(r *http.Request, revocations TokenChecker) (*utils.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errs.Unauthorized("authorization header missing")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errs.Unauthorized("invalid authorization header format")
	}

	tokenStr := parts[1]
	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return nil, errs.Forbidden("invalid or expired token")
	}
	if revocations != nil && revocations.IsRevoked(tokenStr) {
		return nil, errs.Forbidden("token has been revoked")
	}
	return claims, nil
}
