package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-micro-blog/models"
)

// identityProbe is a terminal handler recording the identity withUser
// attached to the request, if any.
type identityProbe struct {
	called bool
	user   models.User
	ok     bool
}

func (p *identityProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.user, p.ok = userFrom(r)
		w.WriteHeader(http.StatusOK)
	})
}

// loginAs performs a login with the given handler and returns the session
// cookie it set.
func loginAs(t *testing.T, h *Handler, user models.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, h.sessions.Establish(rec, user.UserID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// TestWithUser_ValidSession verifies a valid session cookie resolves to the
// stored user and attaches it to the request context.
func TestWithUser_ValidSession(t *testing.T) {
	auth := &mockAuthService{
		findUserFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, alice.UserID, userID)
			return alice, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	cookie := loginAs(t, h, alice)

	probe := &identityProbe{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.withUser(probe.handler()).ServeHTTP(rec, req)

	require.True(t, probe.called)
	require.True(t, probe.ok)
	assert.Equal(t, alice, probe.user)
}

// TestWithUser_AnonymousPassthrough verifies requests without a usable
// session still reach the wrapped handler, just without an identity.
func TestWithUser_AnonymousPassthrough(t *testing.T) {
	tests := []struct {
		name    string
		request func(t *testing.T, h *Handler) *http.Request
	}{
		{
			name: "no cookie",
			request: func(_ *testing.T, _ *Handler) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
		},
		{
			name: "garbage cookie",
			request: func(_ *testing.T, _ *Handler) *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{Name: "session", Value: "not.a.token"})
				return req
			},
		},
		{
			name: "session user deleted",
			request: func(t *testing.T, h *Handler) *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(loginAs(t, h, alice))
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				findUserFn: func(_ context.Context, _ int64) (models.User, error) {
					return models.User{}, errors.New("no user")
				},
			}

			h := newTestHandler(t, auth, nil)
			probe := &identityProbe{}
			rec := httptest.NewRecorder()

			h.withUser(probe.handler()).ServeHTTP(rec, tt.request(t, h))

			require.True(t, probe.called)
			assert.False(t, probe.ok)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// TestLoginRequired_RedirectsAnonymous verifies the guard sends callers
// without an identity to the login page and never runs the wrapped handler.
func TestLoginRequired_RedirectsAnonymous(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	probe := &identityProbe{}
	rec := httptest.NewRecorder()

	h.loginRequired(probe.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/create", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	assert.False(t, probe.called)
}

// TestLoginRequired_PassesAuthenticated verifies the guard forwards a
// request carrying a resolved identity untouched.
func TestLoginRequired_PassesAuthenticated(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	probe := &identityProbe{}
	rec := httptest.NewRecorder()

	req := asUser(httptest.NewRequest(http.MethodGet, "/create", nil), alice)
	h.loginRequired(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, probe.called)
	assert.Equal(t, alice, probe.user)
}
