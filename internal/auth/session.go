package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// SessionManager binds tokens to an HTTP cookie with secure attributes.
type SessionManager struct {
	ttl    time.Duration
	secure bool
}

// NewSessionManager creates a session manager. secure should be true in
// production so the cookie only travels over TLS.
func NewSessionManager(ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{ttl: ttl, secure: secure}
}

// Attach sets the session cookie carrying the token. The cookie lifetime
// equals the token TTL; HttpOnly keeps it away from client script.
func (m *SessionManager) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
}

// Clear overwrites the session cookie with an immediately-expired empty value
// at the same path and attributes, so sign-out works even when the client
// never evicts cookies itself.
func (m *SessionManager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
