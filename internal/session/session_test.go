package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
)

func newTestManager() *Manager {
	return NewManager(config.Auth{
		SessionSignKey:  "test-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: time.Hour,
	}, logger.Nop())
}

// sessionCookie extracts the session cookie set on the recorder, failing the
// test when absent.
func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie was set")
	return nil
}

// requestWithCookie builds a request carrying the given cookie value.
func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	return req
}

func TestEstablish_SetsHttpOnlyCookie(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()

	require.NoError(t, m.Establish(rr, 42))

	c := sessionCookie(t, rr)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly, "session cookie must be HttpOnly")
	assert.Equal(t, "/", c.Path)
}

func TestEstablish_ThenCurrentIdentity_RoundTrip(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()

	require.NoError(t, m.Establish(rr, 42))

	userID, err := m.CurrentIdentity(requestWithCookie(sessionCookie(t, rr).Value))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestCurrentIdentity_NoCookie(t *testing.T) {
	m := newTestManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.CurrentIdentity(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentIdentity_TamperedToken(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()
	require.NoError(t, m.Establish(rr, 42))

	tampered := sessionCookie(t, rr).Value + "x"
	_, err := m.CurrentIdentity(requestWithCookie(tampered))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCurrentIdentity_WrongSignKey(t *testing.T) {
	issuing := newTestManager()
	rr := httptest.NewRecorder()
	require.NoError(t, issuing.Establish(rr, 42))

	verifying := NewManager(config.Auth{
		SessionSignKey:  "different-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: time.Hour,
	}, logger.Nop())

	_, err := verifying.CurrentIdentity(requestWithCookie(sessionCookie(t, rr).Value))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCurrentIdentity_WrongIssuer(t *testing.T) {
	issuing := NewManager(config.Auth{
		SessionSignKey:  "test-secret",
		SessionIssuer:   "other-issuer",
		SessionDuration: time.Hour,
	}, logger.Nop())
	rr := httptest.NewRecorder()
	require.NoError(t, issuing.Establish(rr, 42))

	m := newTestManager()
	_, err := m.CurrentIdentity(requestWithCookie(sessionCookie(t, rr).Value))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCurrentIdentity_ExpiredToken(t *testing.T) {
	issuing := NewManager(config.Auth{
		SessionSignKey:  "test-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: -time.Minute, // already expired at issue time
	}, logger.Nop())
	rr := httptest.NewRecorder()
	require.NoError(t, issuing.Establish(rr, 42))

	m := newTestManager()
	_, err := m.CurrentIdentity(requestWithCookie(sessionCookie(t, rr).Value))
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestTerminate_ExpiresCookie(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()

	m.Terminate(rr)

	c := sessionCookie(t, rr)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestTerminate_Twice_NoPanic(t *testing.T) {
	m := newTestManager()
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		m.Terminate(rr)
		m.Terminate(rr)
	})
}

func TestGenerateSessionToken_RequiresParams(t *testing.T) {
	_, err := generateSessionToken("", 1, time.Hour, "key")
	assert.Error(t, err)

	_, err = generateSessionToken("issuer", 1, 0, "key")
	assert.Error(t, err)

	_, err = generateSessionToken("issuer", 1, time.Hour, "")
	assert.Error(t, err)
}
