package models

import "time"

type DashboardStats struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	ChurnRate           float64 `json:"churnRate"`
	AverageSpeed        float64 `json:"averageSpeed"`
	SupportTickets      int     `json:"supportTickets"`
	SystemUptime        float64 `json:"systemUptime"`
	NewSignups          int     `json:"newSignups"`
}

// ConversionRate is the share of users holding an active subscription, in percent.
func (s DashboardStats) ConversionRate() float64 {
	if s.TotalUsers == 0 {
		return 0
	}
	return float64(s.ActiveSubscriptions) / float64(s.TotalUsers) * 100
}

type ActivityType string

const (
	ActivitySignup       ActivityType = "signup"
	ActivityUpgrade      ActivityType = "upgrade"
	ActivityDowngrade    ActivityType = "downgrade"
	ActivityCancellation ActivityType = "cancellation"
	ActivitySupport      ActivityType = "support"
)

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	User        string       `json:"user"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      string       `json:"status"`
}

type SystemAlert struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Resolved    bool      `json:"resolved"`
}

type SubscriptionTrend struct {
	Month     string `json:"month"`
	Active    int    `json:"active"`
	Cancelled int    `json:"cancelled"`
	New       int    `json:"new"`
}

type PlanShare struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"`
}

type ChurnReason struct {
	Reason     string  `json:"reason"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type PerformanceMetric struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Change float64 `json:"change"`
	Target float64 `json:"target"`
}

// OnTarget reports whether the metric meets its target. Response time
// style metrics are better when lower.
func (m PerformanceMetric) OnTarget() bool {
	if m.Unit == "hours" {
		return m.Value <= m.Target
	}
	return m.Value >= m.Target
}

type TopPlan struct {
	Name        string  `json:"name"`
	Subscribers int     `json:"subscribers"`
	Revenue     float64 `json:"revenue"`
	Growth      float64 `json:"growth"`
}

type AnalyticsReport struct {
	Range              string              `json:"range"`
	GeneratedAt        time.Time           `json:"generatedAt"`
	SubscriptionTrends []SubscriptionTrend `json:"subscriptionTrends"`
	PlanDistribution   []PlanShare         `json:"planDistribution"`
	Revenue            []RevenuePoint      `json:"revenue"`
	Churn              []ChurnReason       `json:"churn"`
	Performance        []PerformanceMetric `json:"performance"`
	TopPlans           []TopPlan           `json:"topPlans"`
}
