package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/edu2job/edu2job-backend/internal/jwt"
	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

// TokenParser defines the minimal interface needed by the auth middleware.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var authKey = contextKey{}

// SetAuthToContext stores the caller's verified claims in the context.
func SetAuthToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, authKey, claims)
}

// GetAuthFromContext retrieves the caller's claims from the context.
// Returns nil if the request did not pass the auth middleware.
func GetAuthFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(authKey).(*jwt.Claims)
	return claims
}

// errorBody is the structured body written by the guards.
type errorBody struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that requires a valid access token
// and stores its claims in the request context.
func AuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errorBody{Error: "Unauthorized"})
				return
			}

			claims, err := parser.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errorBody{Error: "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetAuthToContext(ctx, claims)))
		})
	}
}

// AdminMiddleware returns a middleware that requires the authenticated
// caller to hold the ADMIN role. Must be composed after AuthMiddleware.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetAuthFromContext(r.Context())
			if claims == nil {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errorBody{Error: "Unauthorized"})
				return
			}
			if claims.Role != models.RoleAdmin {
				logger.Log.Warnw("admin access denied", "user_id", claims.UserID, "role", claims.Role)
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(errorBody{Error: "Forbidden"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
