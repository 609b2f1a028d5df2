package session

import (
	"net/http"
	"time"
)

// CookieName is the name under which the signed session token travels to the
// client.
const CookieName = "session"

// setCookie issues the session cookie to the client. The cookie is HttpOnly
// and SameSite=Lax; Secure is left to the deployment's TLS terminator.
func setCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie removes the session cookie from the client.
func clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
