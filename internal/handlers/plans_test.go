package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/models"
)

type planList = listResponse[models.Plan]

func TestBrowsePlansFilters(t *testing.T) {
	s := newTestServer(t)

	list := decode[planList](t, s.do(t, http.MethodGet, "/api/v1/plans?minPrice=0&maxPrice=200", "", nil))
	assert.Equal(t, 6, list.Count)
	assert.Nil(t, list.EmptyState)

	list = decode[planList](t, s.do(t, http.MethodGet, "/api/v1/plans?speed=ultra", "", nil))
	require.NotZero(t, list.Count)
	for _, p := range list.Items {
		assert.GreaterOrEqual(t, p.DownloadSpeed, 500)
	}

	list = decode[planList](t, s.do(t, http.MethodGet, "/api/v1/plans?category=premium&search=family", "", nil))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Family Plus", list.Items[0].Name)
}

func TestBrowsePlansEmptyState(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/plans?search=satellite", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[planList](t, rec)
	assert.Zero(t, list.Count)
	assert.NotNil(t, list.Items)
	require.NotNil(t, list.EmptyState)
	assert.Equal(t, "No plans found", list.EmptyState.Title)
}

func TestBrowsePlansRejectsUnknownSettings(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/plans?speed=ludicrous", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_speed_tier", errorCode(t, rec))

	rec = s.do(t, http.MethodGet, "/api/v1/plans?minPrice=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_price_range", errorCode(t, rec))

	rec = s.do(t, http.MethodGet, "/api/v1/plans?minPrice=NaN", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_price_range", errorCode(t, rec))
}

func TestAdminPlanLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin@lumenquest.com", "admin123").AccessToken

	rec := s.do(t, http.MethodPost, "/api/v1/admin/plans", admin, gin.H{
		"name":          "Fibre Max",
		"description":   "Symmetric gigabit",
		"downloadSpeed": 1000,
		"uploadSpeed":   1000,
		"dataQuota":     "Unlimited",
		"price":         149.99,
		"category":      "premium",
		"features":      []string{"Static IP"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[struct {
		Plan models.Plan `json:"plan"`
	}](t, rec).Plan
	assert.Equal(t, "1000 Mbps", created.Speed)
	assert.True(t, created.Active)

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/plans/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/plans/2", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "plan_has_subscribers", errorCode(t, rec))

	rec = s.do(t, http.MethodPost, "/api/v1/admin/plans", admin, gin.H{
		"name":          "Broken",
		"downloadSpeed": 10,
		"uploadSpeed":   1,
		"dataQuota":     "1 GB",
		"category":      "premium",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorCode(t, rec))
}

func TestAdminRoutesNeedAdminIdentity(t *testing.T) {
	s := newTestServer(t)
	user := s.login(t, "user@lumenquest.com", "password123").AccessToken

	rec := s.do(t, http.MethodGet, "/api/v1/admin/plans", user, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Switching the portal view does not grant admin rights.
	rec = s.do(t, http.MethodPut, "/api/v1/portal", user, gin.H{"role": "admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/admin/plans", user, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/plans", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
