package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"whiteboard/internal/logging"
	"whiteboard/internal/models"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"type":    "AuthenticationError",
		"message": message,
	})
}

// Middleware provides the token authentication middleware.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// RequireToken checks for a valid Bearer token and stores the resolved
// user in the request context.
func (m *Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization required.")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required.")
			return
		}

		user, err := m.Token.Validate(tokenString)
		if err != nil {
			logging.Log.WithError(err).Debug("Token validation failed")
			writeError(w, http.StatusUnauthorized, "Token is invalid.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user stored by RequireToken.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
