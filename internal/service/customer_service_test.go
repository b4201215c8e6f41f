package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
	"lumenquest/internal/repository"
)

func newCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	repos := testRepos(t)
	svc := NewCustomerService(repos.Subscriptions, repos.Plans, repos.Offers, repos.Notifications, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSubscriptionProvisionedOnce(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	sub, err := svc.Subscription(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "Home Pro", sub.PlanName)

	_, err = svc.Upgrade(ctx, "1", "3")
	require.NoError(t, err)

	again, err := svc.Subscription(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Ultra Speed", again.PlanName)

	usage, err := svc.Usage(ctx, "1")
	require.NoError(t, err)
	assert.NotEmpty(t, usage)
}

func TestPlanOptions(t *testing.T) {
	svc := newCustomerService(t)

	opts, err := svc.Options(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ultra Speed", "Business Elite", "Family Plus"}, planNames(opts.Upgrades))
	assert.Equal(t, []string{"Starter Connect", "Student Special"}, planNames(opts.Downgrades))
}

func TestUpgradeAppliesImmediately(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	sub, err := svc.Upgrade(ctx, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "3", sub.PlanID)
	assert.Equal(t, 99.99, sub.Price)
	assert.Equal(t, "500 Mbps", sub.Speed)

	_, err = svc.Upgrade(ctx, "1", "2")
	assert.ErrorIs(t, err, ErrNotAnUpgrade)

	_, err = svc.Upgrade(ctx, "1", "7")
	assert.ErrorIs(t, err, ErrPlanUnavailable)

	_, err = svc.Upgrade(ctx, "1", "missing")
	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
}

func TestDowngradeIsDeferred(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	sub, err := svc.Downgrade(ctx, "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "2", sub.PlanID)
	assert.Equal(t, "1", sub.PendingPlanID)

	_, err = svc.Downgrade(ctx, "1", "3")
	assert.ErrorIs(t, err, ErrNotADowngrade)

	// An upgrade supersedes the pending downgrade.
	sub, err = svc.Upgrade(ctx, "1", "5")
	require.NoError(t, err)
	assert.Empty(t, sub.PendingPlanID)
}

func TestCancelAndRenew(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	_, err := svc.Cancel(ctx, "1", "   ")
	assert.ErrorIs(t, err, ErrCancelReason)

	sub, err := svc.Cancel(ctx, "1", "Moving house")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusCancelled, sub.Status)
	assert.Equal(t, "Moving house", sub.CancelReason)
	assert.False(t, sub.AutoRenew)

	_, err = svc.Cancel(ctx, "1", "again")
	assert.ErrorIs(t, err, ErrSubscriptionClosed)
	_, err = svc.Upgrade(ctx, "1", "3")
	assert.ErrorIs(t, err, ErrSubscriptionClosed)

	sub, err = svc.Renew(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, sub.Status)
	assert.Empty(t, sub.CancelReason)
	assert.True(t, sub.AutoRenew)
	assert.Equal(t, "2025-02-14", sub.NextBilling)
}

func TestRenewRollsLapsedBillingForward(t *testing.T) {
	svc := newCustomerService(t)
	svc.now = func() time.Time { return time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC) }

	sub, err := svc.Renew(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-15", sub.NextBilling)
}

func TestOffersAndNotifications(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	offers, err := svc.Offers(ctx, filter.All)
	require.NoError(t, err)
	assert.Len(t, offers, 5)

	existing, err := svc.Offers(ctx, filter.OfferCategoryFilter(models.OfferCategoryExistingCustomer))
	require.NoError(t, err)
	require.Len(t, existing, 2)
	assert.Equal(t, "Free Speed Upgrade", existing[0].Title)

	inbox, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 4)
	assert.Equal(t, "1", inbox[0].ID)
	assert.False(t, inbox[0].Read)

	require.NoError(t, svc.MarkNotificationRead(ctx, "1"))
	inbox, err = svc.Notifications(ctx)
	require.NoError(t, err)
	assert.True(t, inbox[0].Read)

	assert.ErrorIs(t, svc.MarkNotificationRead(ctx, "missing"), repository.ErrNotificationNotFound)
}
