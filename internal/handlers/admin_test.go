package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/models"
)

func TestAdminUsers(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin@lumenquest.com", "admin123").AccessToken

	type usersBody struct {
		Users   listResponse[models.Account] `json:"users"`
		Summary models.AccountSummary        `json:"summary"`
	}
	body := decode[usersBody](t, s.do(t, http.MethodGet, "/api/v1/admin/users?status=active", admin, nil))
	assert.Equal(t, 3, body.Users.Count)
	assert.Equal(t, 5, body.Summary.Total)

	body = decode[usersBody](t, s.do(t, http.MethodGet, "/api/v1/admin/users?search=nobody", admin, nil))
	require.NotNil(t, body.Users.EmptyState)

	rec := s.do(t, http.MethodPost, "/api/v1/admin/users/1/suspend", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/v1/admin/users/1/suspend", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", errorCode(t, rec))

	rec = s.do(t, http.MethodGet, "/api/v1/admin/users?status=banned", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCampaigns(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin@lumenquest.com", "admin123").AccessToken

	rec := s.do(t, http.MethodPost, "/api/v1/admin/templates", admin, gin.H{
		"title":    "Speed Boost",
		"content":  "Your line now runs faster.",
		"type":     "in-app",
		"category": "service",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/admin/campaigns/estimate?audience=ultra", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"audience":"ultra","recipients":12340}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/admin/campaigns", admin, gin.H{
		"name":           "Boost rollout",
		"template":       "Speed Boost",
		"targetAudience": "ultra",
		"scheduledDate":  time.Now().Add(-time.Minute).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	campaign := decode[struct {
		Campaign models.Campaign `json:"campaign"`
	}](t, rec).Campaign
	assert.Equal(t, models.CampaignStatusDraft, campaign.Status)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/campaigns/"+campaign.ID+"/schedule", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The fixture campaigns are long past due, so they go out too.
	rec = s.do(t, http.MethodPost, "/api/v1/admin/campaigns/dispatch", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":3}`, rec.Body.String())

	type campaignsBody struct {
		Campaigns listResponse[models.Campaign] `json:"campaigns"`
		Stats     models.CampaignStats          `json:"stats"`
	}
	body := decode[campaignsBody](t, s.do(t, http.MethodGet, "/api/v1/admin/campaigns", admin, nil))
	assert.Equal(t, 4, body.Campaigns.Count)
	assert.Zero(t, body.Stats.Scheduled)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/campaigns/"+campaign.ID+"/cancel", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminAnalytics(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin@lumenquest.com", "admin123").AccessToken

	rec := s.do(t, http.MethodGet, "/api/v1/admin/analytics?range=90d", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[models.AnalyticsReport](t, rec)
	assert.Len(t, report.Revenue, 3)
	assert.Len(t, report.PlanDistribution, 4)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/analytics?range=forever", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/admin/analytics/export", admin, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "exports_disabled", errorCode(t, rec))

	rec = s.do(t, http.MethodPost, "/api/v1/admin/alerts/1/resolve", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/overview", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decode[map[string]any](t, rec)
	assert.EqualValues(t, 1, overview["openAlerts"])
}
