// Package session implements the stateless session layer of the application.
//
// A session is a signed JWT carried in an HttpOnly cookie: the server holds
// no session table, and a token is valid for any process that shares the
// signature key. The Manager exposes the three operations the rest of the
// application needs: Establish after a successful login, CurrentIdentity to
// resolve the requesting user, and Terminate on logout.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
)

// Manager issues, validates, and revokes session cookies. All state is
// read-only after construction, so a single Manager is safe for concurrent
// use across requests.
type Manager struct {
	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match are rejected during parsing.
	issuer string

	// duration controls how long a newly established session remains valid.
	duration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewManager constructs a session Manager populated with the security
// parameters from cfg.
func NewManager(cfg config.Auth, logger *logger.Logger) *Manager {
	logger.Debug().Str("issuer", cfg.SessionIssuer).Dur("duration", cfg.SessionDuration).Msg("creating session manager")
	return &Manager{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// Establish starts a new session for the given user: it issues a fresh
// signed token and sets it as the session cookie, replacing any cookie a
// previous login left behind. Must be called only after the caller has
// verified the user's credentials.
func (m *Manager) Establish(w http.ResponseWriter, userID int64) error {
	token, err := generateSessionToken(m.issuer, userID, m.duration, m.signKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	setCookie(w, token.String(), time.Now().Add(m.duration))
	return nil
}

// CurrentIdentity resolves the identity bound to the request's session
// cookie.
//
// Returns the user ID on success, [ErrNoSession] when the cookie is absent,
// or [ErrInvalidSession] when the token fails validation (bad signature,
// wrong issuer, expired). Callers treat both error cases as "no identity";
// the distinction exists only for logging.
func (m *Manager) CurrentIdentity(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return 0, ErrNoSession
	}

	token, err := parseSessionToken(cookie.Value, m.signKey, m.issuer)
	if err != nil {
		return 0, ErrInvalidSession
	}

	return token.UserID, nil
}

// Terminate clears the session cookie so subsequent CurrentIdentity calls
// return no identity. Terminating a request with no active session is not an
// error; the operation is idempotent.
func (m *Manager) Terminate(w http.ResponseWriter) {
	clearCookie(w)
}
