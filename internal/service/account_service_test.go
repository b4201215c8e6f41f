package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
	"lumenquest/internal/repository"
)

func TestAccountTransitions(t *testing.T) {
	svc := NewAccountService(testRepos(t).Accounts, zerolog.Nop())
	ctx := context.Background()

	acc, err := svc.Suspend(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusSuspended, acc.Status)

	_, err = svc.Suspend(ctx, "1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	acc, err = svc.Reactivate(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, acc.Status)

	// Cancelled accounts stay cancelled.
	_, err = svc.Reactivate(ctx, "4")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Suspend(ctx, "4")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Suspend(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountListAndSummary(t *testing.T) {
	svc := NewAccountService(testRepos(t).Accounts, zerolog.Nop())
	ctx := context.Background()

	homePro, err := svc.List(ctx, filter.AccountFilter{Plan: "Home Pro", Status: filter.All})
	require.NoError(t, err)
	require.Len(t, homePro, 2)
	assert.Equal(t, "John Doe", homePro[0].Name)

	byEmail, err := svc.List(ctx, filter.AccountFilter{Search: "SARAH.SMITH@"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Active)
	assert.Equal(t, 11, summary.SupportTickets)
	assert.InDelta(t, 5169.45, summary.TotalRevenue, 0.001)
	assert.Equal(t, []string{"Home Pro", "Ultra Speed", "Starter Connect", "Business Elite"}, summary.Plans)

	require.NoError(t, svc.Delete(ctx, "5"))
	summary, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.ErrorIs(t, svc.Delete(ctx, "5"), repository.ErrAccountNotFound)
}
