package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/jkalnins/daybook/internal/server/auth"
	"github.com/jkalnins/daybook/internal/server/models"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext extracts the authenticated caller identity placed into
// the request context by Authenticator.
func UserIDFromContext(ctx context.Context) (models.UserID, bool) {
	id, ok := ctx.Value(userIDKey).(models.UserID)
	return id, ok
}

// Authenticator verifies the Bearer token and injects the caller's UserID
// into the request context. Requests without a valid token never reach the
// wrapped handler.
func Authenticator(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			userID, err := auth.GetUserIDFromToken(parts[1], secretKey)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
