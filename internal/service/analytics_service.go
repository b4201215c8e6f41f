package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lumenquest/internal/fixtures"
	"lumenquest/internal/models"
)

var (
	ErrInvalidRange    = errors.New("invalid analytics range")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrExportsDisabled = errors.New("report exports are not configured")
)

// Ranges maps an analytics range to the number of monthly points it covers.
var Ranges = map[string]int{
	"7d":  2,
	"30d": 2,
	"90d": 3,
	"1y":  12,
}

type ReportStore interface {
	PutReport(ctx context.Context, key, contentType string, body []byte) (string, time.Time, error)
}

type AnalyticsService struct {
	plans   PlanRepository
	reports ReportStore
	log     zerolog.Logger
	now     func() time.Time

	mu     sync.Mutex
	alerts []models.SystemAlert
}

// NewAnalyticsService accepts a nil reports store; exports then fail with
// ErrExportsDisabled.
func NewAnalyticsService(plans PlanRepository, reports ReportStore, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		plans:   plans,
		reports: reports,
		log:     log,
		now:     time.Now,
		alerts:  fixtures.SystemAlerts(),
	}
}

type Overview struct {
	Stats          models.DashboardStats `json:"stats"`
	ConversionRate float64               `json:"conversionRate"`
	RecentActivity []models.Activity     `json:"recentActivity"`
	Alerts         []models.SystemAlert  `json:"alerts"`
	OpenAlerts     int                   `json:"openAlerts"`
}

func (s *AnalyticsService) Overview(context.Context) Overview {
	stats := fixtures.DashboardStats()

	s.mu.Lock()
	alerts := append([]models.SystemAlert(nil), s.alerts...)
	s.mu.Unlock()

	open := 0
	for _, a := range alerts {
		if !a.Resolved {
			open++
		}
	}
	return Overview{
		Stats:          stats,
		ConversionRate: round1(stats.ConversionRate()),
		RecentActivity: fixtures.RecentActivity(),
		Alerts:         alerts,
		OpenAlerts:     open,
	}
}

func (s *AnalyticsService) ResolveAlert(_ context.Context, id string) (models.SystemAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Resolved = true
			s.log.Info().Str("alert_id", id).Msg("alert resolved")
			return s.alerts[i], nil
		}
	}
	return models.SystemAlert{}, ErrAlertNotFound
}

func ParseRange(raw string) (string, error) {
	r := strings.ToLower(strings.TrimSpace(raw))
	if r == "" {
		return "7d", nil
	}
	if _, ok := Ranges[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRange, raw)
	}
	return r, nil
}

// Report assembles the analytics view. The plan distribution and top plans
// are derived from the live catalogue; the time series come from the
// reporting snapshot.
func (s *AnalyticsService) Report(ctx context.Context, rng string) (models.AnalyticsReport, error) {
	points, ok := Ranges[rng]
	if !ok {
		return models.AnalyticsReport{}, fmt.Errorf("%w: %q", ErrInvalidRange, rng)
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	return models.AnalyticsReport{
		Range:              rng,
		GeneratedAt:        s.now().UTC(),
		SubscriptionTrends: lastN(fixtures.SubscriptionTrends(), points),
		PlanDistribution:   Distribution(plans),
		Revenue:            lastN(fixtures.Revenue(), points),
		Churn:              fixtures.Churn(),
		Performance:        fixtures.Performance(),
		TopPlans:           topPlans(plans),
	}, nil
}

type Export struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Export uploads the report for rng as JSON and returns a download link.
func (s *AnalyticsService) Export(ctx context.Context, rng string) (Export, error) {
	if s.reports == nil {
		return Export{}, ErrExportsDisabled
	}
	report, err := s.Report(ctx, rng)
	if err != nil {
		return Export{}, err
	}
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Export{}, fmt.Errorf("encode report: %w", err)
	}

	key := fmt.Sprintf("analytics/%s/%s.json", rng, report.GeneratedAt.Format("20060102T150405Z"))
	url, expiresAt, err := s.reports.PutReport(ctx, key, "application/json", body)
	if err != nil {
		return Export{}, err
	}
	s.log.Info().Str("key", key).Int("bytes", len(body)).Msg("analytics report exported")
	return Export{Key: key, URL: url, ExpiresAt: expiresAt}, nil
}

// Distribution is the share of subscribers per active plan, largest first.
func Distribution(plans []models.Plan) []models.PlanShare {
	total := 0
	for _, p := range plans {
		if p.Active {
			total += p.Subscribers
		}
	}
	shares := make([]models.PlanShare, 0, len(plans))
	if total == 0 {
		return shares
	}
	for _, p := range plans {
		if p.Subscribers == 0 || !p.Active {
			continue
		}
		shares = append(shares, models.PlanShare{
			Name:       p.Name,
			Value:      p.Subscribers,
			Percentage: round1(float64(p.Subscribers) / float64(total) * 100),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Value > shares[j].Value })
	return shares
}

func topPlans(plans []models.Plan) []models.TopPlan {
	growth := make(map[string]float64)
	for _, t := range fixtures.TopPlans() {
		growth[t.Name] = t.Growth
	}

	top := make([]models.TopPlan, 0, len(plans))
	for _, p := range plans {
		if p.Subscribers == 0 || !p.Active {
			continue
		}
		top = append(top, models.TopPlan{
			Name:        p.Name,
			Subscribers: p.Subscribers,
			Revenue:     math.Round(p.Price * float64(p.Subscribers)),
			Growth:      growth[p.Name],
		})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Subscribers > top[j].Subscribers })
	return top
}

func lastN[T any](items []T, n int) []T {
	if n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
