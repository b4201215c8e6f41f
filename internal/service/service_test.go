package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/config"
	"lumenquest/internal/portal"
	"lumenquest/internal/queue"
	"lumenquest/internal/repository/memory"
	"lumenquest/internal/security"
	"lumenquest/internal/session"
)

var testNow = time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

func testRepos(t *testing.T) Repositories {
	t.Helper()
	repos := Repositories{
		Plans:         memory.NewPlanRepository(),
		Accounts:      memory.NewAccountRepository(),
		Users:         memory.NewUserRepository(),
		Templates:     memory.NewTemplateRepository(),
		Campaigns:     memory.NewCampaignRepository(),
		Offers:        memory.NewOfferRepository(),
		Notifications: memory.NewNotificationRepository(),
		Subscriptions: memory.NewSubscriptionRepository(),
	}
	require.NoError(t, SeedFixtures(context.Background(), repos, zerolog.Nop()))
	return repos
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTAccessSecret: "test-secret",
			JWTAccessTTL:    time.Hour,
			SessionTTL:      24 * time.Hour,
		},
	}
}

var testHashParams = security.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8}

type authFixture struct {
	auth     *AuthService
	sessions *session.MemoryStore
	portals  *portal.Registry
	repos    Repositories
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	repos := testRepos(t)
	sessions := session.NewMemoryStore()
	portals := portal.NewRegistry()
	auth := NewAuthService(repos.Users, sessions, portals, security.NewHasher(testHashParams), testConfig(), zerolog.Nop())
	require.NoError(t, SeedDemoUsers(context.Background(), auth))
	return authFixture{auth: auth, sessions: sessions, portals: portals, repos: repos}
}

type recordingQueue struct {
	mu    sync.Mutex
	tasks []queue.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, task queue.Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, task)
	return nil
}

type storedReport struct {
	key, contentType string
	body             []byte
}

type fakeReportStore struct {
	puts []storedReport
}

func (s *fakeReportStore) PutReport(_ context.Context, key, contentType string, body []byte) (string, time.Time, error) {
	s.puts = append(s.puts, storedReport{key: key, contentType: contentType, body: body})
	return "https://reports.example/" + key, testNow.Add(15 * time.Minute), nil
}
