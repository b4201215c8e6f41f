package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/models"
)

func TestLoginAdmin(t *testing.T) {
	s := newTestServer(t)

	resp := s.login(t, "admin@lumenquest.com", "admin123")
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)

	rec := s.do(t, http.MethodGet, "/api/v1/auth/me", resp.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[struct {
		User models.Identity `json:"user"`
	}](t, rec)
	assert.Equal(t, "admin@lumenquest.com", me.User.Email)
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "admin@lumenquest.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, rec))

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "admin@lumenquest.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_fields", errorCode(t, rec))
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/auth/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAuthenticated":false}`, rec.Body.String())

	resp := s.login(t, "user@lumenquest.com", "password123")

	rec = s.do(t, http.MethodGet, "/api/v1/auth/session", resp.AccessToken, nil)
	state := decode[map[string]any](t, rec)
	assert.Equal(t, true, state["isAuthenticated"])

	// A reloaded client resumes from its persisted session id.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("X-Session-Id", resp.SessionID)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	state = decode[map[string]any](t, rec)
	assert.Equal(t, true, state["isAuthenticated"])
	assert.Equal(t, resp.SessionID, state["sessionId"])

	rec = s.do(t, http.MethodPost, "/api/v1/auth/logout", resp.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/auth/session", resp.AccessToken, nil)
	assert.JSONEq(t, `{"isAuthenticated":false}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/auth/me", resp.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email":     "jane@example.com",
		"password":  "hunter22",
		"firstName": "Jane",
		"lastName":  "Roe",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[authResponse](t, rec)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)
	assert.Equal(t, "Jane", resp.User.FirstName)

	again := s.login(t, "jane@example.com", "hunter22")
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","dependencies":{"memory":"ok"},"environment":"test"}`, rec.Body.String())
}
