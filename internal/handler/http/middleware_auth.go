// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the server-rendered views. Session resolution, access guarding,
// logging, and tracing concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
)

// loginRoute is where the access guard sends unauthenticated callers.
const loginRoute = "/auth/login"

// withUser resolves the session identity for every request, authenticated
// or not, so views can show login state.
//
// It asks the session manager for the identity bound to the request's
// cookie and, on success, materializes the user record and stores it in the
// request context. Any failure (missing cookie, invalid or expired token,
// user row gone) simply leaves the context without an identity; withUser
// never rejects a request.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, err := h.sessions.CurrentIdentity(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.FindUser(r.Context(), userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("session user could not be materialized")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// loginRequired is the access guard: it wraps a protected operation and
// short-circuits with a redirect to the login flow when the request carries
// no resolved identity.
//
// It relies on withUser having already run; applying it to a route is a
// per-operation opt-in done at route-registration time in [Handler.Init].
func (h *Handler) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFrom(r); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("unauthenticated request redirected to login")
			http.Redirect(w, r, loginRoute, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
