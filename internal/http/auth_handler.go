package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/auth"
)

// AuthHandler serves CAS login, logout and the session probe.
type AuthHandler struct {
	cas        *auth.CASClient
	sessions   auth.SessionStore
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthHandler(cas *auth.CASClient, sessions auth.SessionStore, sessionTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{cas: cas, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

// Login handles GET /login. Without a ticket it redirects to the CAS login
// page; with one it validates the ticket, mints a session and sets the
// cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ticket := formValue(r, "ticket")
	if ticket == "" {
		http.Redirect(w, r, h.cas.LoginURL(), http.StatusFound)
		return
	}

	username, err := h.cas.ValidateTicket(r.Context(), ticket)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	token, err := h.sessions.Create(r.Context(), username)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Info("user logged in", zap.String("username", username))
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

// Logout handles GET /logout, dropping the session and expiring the
// cookie. Logging out without a session is a no-op.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// CheckUser handles GET /checkuser behind RequireSession, echoing the
// logged-in username.
func (h *AuthHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"username": usernameFrom(r.Context())})
}
