package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/models"
	"lumenquest/internal/queue"
	"lumenquest/internal/tasks"
)

type campaignFixture struct {
	svc   *CampaignService
	queue *recordingQueue
	repos Repositories
}

func newCampaignFixture(t *testing.T) campaignFixture {
	t.Helper()
	repos := testRepos(t)
	q := &recordingQueue{}
	svc := NewCampaignService(repos.Templates, repos.Campaigns, repos.Plans, repos.Accounts, q, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return campaignFixture{svc: svc, queue: q, repos: repos}
}

func TestEstimateAudience(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	cases := map[models.Audience]int{
		models.AudienceAll:      8420 + 24680 + 12340 + 2952,
		models.AudienceHomePro:  24680,
		models.AudienceBusiness: 2952,
		models.AudienceNew:      1247,
		models.AudienceInactive: 2,
	}
	for audience, want := range cases {
		got, err := f.svc.EstimateAudience(ctx, audience)
		require.NoError(t, err)
		assert.Equal(t, want, got, audience)
	}
}

func TestCreateCampaignDraft(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c, err := f.svc.CreateCampaign(ctx, CampaignInput{
		Name:           "Ultra launch",
		Template:       "Upgrade Offer",
		TargetAudience: models.AudienceUltra,
		ScheduledDate:  testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusDraft, c.Status)
	assert.Equal(t, 12340, c.Recipients)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Templates)
	assert.Equal(t, 2, stats.Scheduled)
	assert.Equal(t, 24680+15420+892+12340, stats.TotalRecipients)
}

func TestCreateCampaignRejectsBadInput(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCampaign(ctx, CampaignInput{Name: "x", Template: "Nope", TargetAudience: models.AudienceAll, ScheduledDate: testNow})
	assert.ErrorIs(t, err, ErrInvalidCampaign)

	_, err = f.svc.CreateCampaign(ctx, CampaignInput{Name: "x", Template: "Upgrade Offer", TargetAudience: "vip", ScheduledDate: testNow})
	assert.ErrorIs(t, err, ErrInvalidCampaign)

	_, err = f.svc.CreateCampaign(ctx, CampaignInput{Name: "x", Template: "Upgrade Offer", TargetAudience: models.AudienceAll})
	assert.ErrorIs(t, err, ErrInvalidCampaign)

	_, err = f.svc.ToggleTemplate(ctx, "4")
	require.NoError(t, err)
	_, err = f.svc.CreateCampaign(ctx, CampaignInput{Name: "x", Template: "Upgrade Offer", TargetAudience: models.AudienceAll, ScheduledDate: testNow})
	assert.ErrorIs(t, err, ErrInvalidCampaign)
}

func TestCreateTemplate(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	tpl, err := f.svc.CreateTemplate(ctx, TemplateInput{
		Title:    "Outage Update",
		Content:  "Service in your area is restored.",
		Type:     models.TemplateTypeInApp,
		Category: models.TemplateCategoryService,
		Active:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-14", tpl.CreatedAt)
	assert.Nil(t, tpl.LastUsed)

	_, err = f.svc.CreateTemplate(ctx, TemplateInput{Title: "x", Content: "y", Type: "fax", Category: models.TemplateCategoryService})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	_, err = f.svc.CreateTemplate(ctx, TemplateInput{Title: " ", Content: "y", Type: models.TemplateTypeSMS, Category: models.TemplateCategoryService})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestScheduleAndCancel(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c, err := f.svc.CreateCampaign(ctx, CampaignInput{Name: "x", Template: "Payment Reminder", TargetAudience: models.AudienceInactive, ScheduledDate: testNow})
	require.NoError(t, err)

	c, err = f.svc.Schedule(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusScheduled, c.Status)

	_, err = f.svc.Schedule(ctx, c.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	c, err = f.svc.Cancel(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCancelled, c.Status)

	// Already sent.
	_, err = f.svc.Cancel(ctx, "3")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDispatchSendsDueCampaigns(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c, err := f.svc.CreateCampaign(ctx, CampaignInput{Name: "Welcome", Template: "Welcome New Customer", TargetAudience: models.AudienceHomePro, ScheduledDate: testNow.Add(-time.Minute)})
	require.NoError(t, err)
	_, err = f.svc.Schedule(ctx, c.ID)
	require.NoError(t, err)

	// Only the new campaign is due; the fixtures are scheduled later.
	sent, err := f.svc.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, f.queue.tasks, 1)
	d, ok := f.queue.tasks[0].(tasks.Delivery)
	require.True(t, ok)
	assert.Equal(t, c.ID, d.CampaignID)
	assert.Equal(t, "email", d.Channel)
	assert.Equal(t, []string{"john.doe@email.com"}, d.To)
	assert.Equal(t, 24680, d.Recipients)

	got, err := f.repos.Campaigns.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusSent, got.Status)

	tpl, err := f.repos.Templates.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, tpl.LastUsed)
	assert.Equal(t, "2025-01-14", *tpl.LastUsed)
	assert.Equal(t, 1247+24680, tpl.Recipients)

	sent, err = f.svc.Dispatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestDispatchOrdersByScheduleAndSkipsEmailLists(t *testing.T) {
	f := newCampaignFixture(t)
	f.svc.now = func() time.Time { return time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC) }

	sent, err := f.svc.Dispatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	require.Len(t, f.queue.tasks, 2)
	first := f.queue.tasks[0].(tasks.Delivery)
	second := f.queue.tasks[1].(tasks.Delivery)
	assert.Equal(t, "1", first.CampaignID)
	assert.Equal(t, "push", first.Channel)
	assert.Nil(t, first.To)
	assert.Equal(t, "2", second.CampaignID)
	assert.Equal(t, "sms", second.Channel)
}

func TestDispatchLeavesCampaignScheduledWhenQueueFails(t *testing.T) {
	f := newCampaignFixture(t)
	f.queue.err = errors.New("stream down")
	f.svc.now = func() time.Time { return time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	sent, err := f.svc.Dispatch(ctx)
	assert.Error(t, err)
	assert.Zero(t, sent)

	got, err := f.repos.Campaigns.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusScheduled, got.Status)
}

// gatedQueue holds the first Enqueue until release is closed.
type gatedQueue struct {
	recordingQueue
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (q *gatedQueue) Enqueue(ctx context.Context, task queue.Task) error {
	q.once.Do(func() { close(q.entered) })
	<-q.release
	return q.recordingQueue.Enqueue(ctx, task)
}

func TestConcurrentDispatchSendsCampaignOnce(t *testing.T) {
	repos := testRepos(t)
	q := &gatedQueue{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewCampaignService(repos.Templates, repos.Campaigns, repos.Plans, repos.Accounts, q, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	results := make(chan int, 2)
	for range 2 {
		go func() {
			sent, err := svc.Dispatch(ctx)
			assert.NoError(t, err)
			results <- sent
		}()
	}

	// One run holds campaign 1 inside Enqueue; the other must finish
	// without queueing it.
	<-q.entered
	first := <-results
	close(q.release)
	second := <-results

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Len(t, q.tasks, 1)

	got, err := repos.Campaigns.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusSent, got.Status)
}
