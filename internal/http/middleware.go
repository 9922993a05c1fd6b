package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/auth"
)

// SessionCookie carries the opaque session token minted at /login.
const SessionCookie = "gtpower_session"

type contextKey int

const usernameKey contextKey = iota

// usernameFrom returns the authenticated username placed by RequireSession.
func usernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// RequireSession gates a handler behind a valid session cookie and injects
// the username into the request context.
func RequireSession(sessions auth.SessionStore, logger *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		username, err := sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			logger.Debug("session lookup failed", zap.Error(err))
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), usernameKey, username)))
	}
}
