// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/render"
	"github.com/MKhiriev/go-micro-blog/internal/service"
	"github.com/MKhiriev/go-micro-blog/internal/session"
	"github.com/MKhiriev/go-micro-blog/internal/store"
	"github.com/MKhiriev/go-micro-blog/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, password string) (models.User, error)
	verifyUserFn   func(ctx context.Context, username, password string) (models.User, error)
	findUserFn     func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	return m.registerUserFn(ctx, username, password)
}

func (m *mockAuthService) VerifyUser(ctx context.Context, username, password string) (models.User, error) {
	return m.verifyUserFn(ctx, username, password)
}

func (m *mockAuthService) FindUser(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock PostService
// ─────────────────────────────────────────────

type mockPostService struct {
	createPostFn   func(ctx context.Context, authorID int64, title, body string) (models.Post, error)
	listPostsFn    func(ctx context.Context) ([]models.Post, error)
	getOwnedPostFn func(ctx context.Context, postID, userID int64) (models.Post, error)
	updatePostFn   func(ctx context.Context, postID, userID int64, title, body string) error
	deletePostFn   func(ctx context.Context, postID, userID int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, authorID int64, title, body string) (models.Post, error) {
	return m.createPostFn(ctx, authorID, title, body)
}

func (m *mockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return m.listPostsFn(ctx)
}

func (m *mockPostService) GetOwnedPost(ctx context.Context, postID, userID int64) (models.Post, error) {
	return m.getOwnedPostFn(ctx, postID, userID)
}

func (m *mockPostService) UpdatePost(ctx context.Context, postID, userID int64, title, body string) error {
	return m.updatePostFn(ctx, postID, userID, title, body)
}

func (m *mockPostService) DeletePost(ctx context.Context, postID, userID int64) error {
	return m.deletePostFn(ctx, postID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testAuthConfig is the session config shared by all handler tests.
var testAuthConfig = config.Auth{
	SessionSignKey:  "test-sign-key",
	SessionIssuer:   "go-micro-blog-test",
	SessionDuration: time.Hour,
}

// newTestHandler builds a Handler with the given service mocks, a real
// session manager, and a real template renderer.
func newTestHandler(t *testing.T, auth service.AuthService, posts service.PostService) *Handler {
	t.Helper()

	renderer, err := render.NewRenderer(logger.Nop())
	require.NoError(t, err)

	svcs := &service.Services{
		AuthService: auth,
		PostService: posts,
	}
	sessions := session.NewManager(testAuthConfig, logger.Nop())

	return NewHandler(svcs, sessions, renderer, logger.Nop())
}

// formRequest builds a POST request with an urlencoded form body.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// credentialsForm builds the register/login form body.
func credentialsForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

// alice is a convenience fixture used across multiple tests.
var alice = models.User{
	UserID:   1,
	Username: "alice",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration redirects the new
// user to the login page.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.register(rec, formRequest("/auth/register", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

// TestRegister_ValidationMessages verifies that each credential validation
// failure re-renders the form with its exact message and no redirect.
func TestRegister_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "missing username", err: service.ErrUsernameRequired, message: "Username is required."},
		{name: "missing password", err: service.ErrPasswordRequired, message: "Password is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newTestHandler(t, auth, nil)
			rec := httptest.NewRecorder()

			h.register(rec, formRequest("/auth/register", credentialsForm("", "")))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Empty(t, rec.Header().Get("Location"))
		})
	}
}

// TestRegister_UsernameTaken verifies the duplicate-username message embeds
// the submitted username verbatim.
func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.register(rec, formRequest("/auth/register", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Users alice is already registered.")
}

// TestRegister_UnexpectedError verifies internal failures return 500.
func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db gone")
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.register(rec, formRequest("/auth/register", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies a correct login sets the session cookie and
// redirects to the index page.
func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		verifyUserFn: func(_ context.Context, _, _ string) (models.User, error) {
			return alice, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	rec := httptest.NewRecorder()

	h.login(rec, formRequest("/auth/login", credentialsForm("alice", "secret")))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// TestLogin_Failures verifies the exact lookup and password failure
// messages re-render the login form without a session cookie.
func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "unknown username", err: store.ErrUserNotFound, message: "Incorrect username."},
		{name: "wrong password", err: service.ErrWrongPassword, message: "Incorrect password."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				verifyUserFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newTestHandler(t, auth, nil)
			rec := httptest.NewRecorder()

			h.login(rec, formRequest("/auth/login", credentialsForm("alice", "bad")))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout verifies logout expires the session cookie and redirects to
// the index page, with or without an active session.
func TestLogout(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	rec := httptest.NewRecorder()

	h.logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

// ─────────────────────────────────────────────
// forms
// ─────────────────────────────────────────────

// TestAuthForms verifies the GET form pages render successfully.
func TestAuthForms(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	t.Run("register form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.registerForm(rec, httptest.NewRequest(http.MethodGet, "/auth/register", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Register")
	})

	t.Run("login form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.loginForm(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Log In")
	})
}
