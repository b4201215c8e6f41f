package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/config"
	"lumenquest/internal/notify"
	"lumenquest/internal/portal"
	"lumenquest/internal/queue"
	"lumenquest/internal/repository/memory"
	"lumenquest/internal/security"
	"lumenquest/internal/service"
	"lumenquest/internal/session"
	"lumenquest/internal/tasks"
)

type testServer struct {
	router  *gin.Engine
	portals *portal.Registry
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	log := zerolog.Nop()

	cfg := &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTAccessSecret: "handler-secret",
			JWTAccessTTL:    time.Hour,
			SessionTTL:      24 * time.Hour,
		},
	}

	repos := service.Repositories{
		Plans:         memory.NewPlanRepository(),
		Accounts:      memory.NewAccountRepository(),
		Users:         memory.NewUserRepository(),
		Templates:     memory.NewTemplateRepository(),
		Campaigns:     memory.NewCampaignRepository(),
		Offers:        memory.NewOfferRepository(),
		Notifications: memory.NewNotificationRepository(),
		Subscriptions: memory.NewSubscriptionRepository(),
	}
	require.NoError(t, service.SeedFixtures(ctx, repos, log))

	portals := portal.NewRegistry()
	hasher := security.NewHasher(security.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8})
	auth := service.NewAuthService(repos.Users, session.NewMemoryStore(), portals, hasher, cfg, log)
	require.NoError(t, service.SeedDemoUsers(ctx, auth))

	processor := tasks.NewProcessor(log, notify.NewLogDeliverer(log))
	svc := Services{
		Auth:      auth,
		Plans:     service.NewPlanService(repos.Plans, log),
		Accounts:  service.NewAccountService(repos.Accounts, log),
		Campaigns: service.NewCampaignService(repos.Templates, repos.Campaigns, repos.Plans, repos.Accounts, queue.NewInline(processor), log),
		Customers: service.NewCustomerService(repos.Subscriptions, repos.Plans, repos.Offers, repos.Notifications, log),
		Analytics: service.NewAnalyticsService(repos.Plans, nil, log),
	}

	router := gin.New()
	NewHandlerSet(log, cfg, svc, portals, HealthCheck{Name: "memory", Ping: func(context.Context) error { return nil }}).
		Register(router.Group("/api"))
	return testServer{router: router, portals: portals}
}

func (s testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s testServer) login(t *testing.T, email, password string) authResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}
