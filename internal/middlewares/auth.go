package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/patorma/book-reviews/internal/jwt"
	"github.com/patorma/book-reviews/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// AuthMiddleware returns a middleware that validates the bearer JWT.
// A missing token is answered with 401, an invalid or expired one with 403.
// On success the token claims are available through ClaimsFromContext.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				if errors.Is(err, jwt.ErrTokenMissing) {
					writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
					return
				}
				writeMessage(w, http.StatusForbidden, "Invalid or expired token.")
				return
			}

			ctx = context.WithValue(ctx, claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// WithClaims stores claims in ctx the way AuthMiddleware does.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}
