package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumenquest/internal/fixtures"
	"lumenquest/internal/models"
)

func newAnalyticsService(t *testing.T, reports ReportStore) *AnalyticsService {
	t.Helper()
	svc := NewAnalyticsService(testRepos(t).Plans, reports, zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestDistributionCountsActivePlansOnly(t *testing.T) {
	shares := Distribution(fixtures.Plans())

	require.Len(t, shares, 4)
	assert.Equal(t, models.PlanShare{Name: "Home Pro", Value: 24680, Percentage: 51.0}, shares[0])
	assert.Equal(t, "Ultra Speed", shares[1].Name)
	assert.Equal(t, 25.5, shares[1].Percentage)
	assert.Equal(t, 17.4, shares[2].Percentage)
	assert.Equal(t, 6.1, shares[3].Percentage)

	assert.Empty(t, Distribution(nil))
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("")
	require.NoError(t, err)
	assert.Equal(t, "7d", r)

	r, err = ParseRange(" 1Y ")
	require.NoError(t, err)
	assert.Equal(t, "1y", r)

	_, err = ParseRange("2w")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestReportWindows(t *testing.T) {
	svc := newAnalyticsService(t, nil)
	ctx := context.Background()

	report, err := svc.Report(ctx, "90d")
	require.NoError(t, err)
	require.Len(t, report.SubscriptionTrends, 3)
	assert.Equal(t, "Jan", report.SubscriptionTrends[2].Month)
	assert.Len(t, report.Revenue, 3)
	assert.Equal(t, testNow, report.GeneratedAt)

	require.NotEmpty(t, report.TopPlans)
	assert.Equal(t, "Home Pro", report.TopPlans[0].Name)
	assert.Equal(t, 24680, report.TopPlans[0].Subscribers)

	year, err := svc.Report(ctx, "1y")
	require.NoError(t, err)
	assert.Len(t, year.SubscriptionTrends, 7)

	_, err = svc.Report(ctx, "5d")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverviewAndAlerts(t *testing.T) {
	svc := newAnalyticsService(t, nil)
	ctx := context.Background()

	overview := svc.Overview(ctx)
	assert.Equal(t, 2, overview.OpenAlerts)
	assert.Len(t, overview.RecentActivity, 5)

	alert, err := svc.ResolveAlert(ctx, "1")
	require.NoError(t, err)
	assert.True(t, alert.Resolved)
	assert.Equal(t, 1, svc.Overview(ctx).OpenAlerts)

	_, err = svc.ResolveAlert(ctx, "99")
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestExportUploadsReport(t *testing.T) {
	store := &fakeReportStore{}
	svc := newAnalyticsService(t, store)

	export, err := svc.Export(context.Background(), "30d")
	require.NoError(t, err)
	assert.Equal(t, "analytics/30d/20250114T120000Z.json", export.Key)
	assert.Equal(t, "https://reports.example/"+export.Key, export.URL)

	require.Len(t, store.puts, 1)
	assert.Equal(t, "application/json", store.puts[0].contentType)

	var report models.AnalyticsReport
	require.NoError(t, json.Unmarshal(store.puts[0].body, &report))
	assert.Equal(t, "30d", report.Range)
	assert.Len(t, report.PlanDistribution, 4)
}

func TestExportWithoutStore(t *testing.T) {
	svc := newAnalyticsService(t, nil)

	_, err := svc.Export(context.Background(), "7d")
	assert.ErrorIs(t, err, ErrExportsDisabled)
}
