package fixtures

import "lumenquest/internal/models"

func DashboardStats() models.DashboardStats {
	return models.DashboardStats{
		TotalUsers:          52847,
		ActiveSubscriptions: 48392,
		MonthlyRevenue:      2847392,
		ChurnRate:           3.2,
		AverageSpeed:        187.5,
		SupportTickets:      127,
		SystemUptime:        99.97,
		NewSignups:          1247,
	}
}

func RecentActivity() []models.Activity {
	return []models.Activity{
		{ID: "1", Type: models.ActivitySignup, User: "john.doe@email.com", Description: "New user signed up for Home Pro plan", Timestamp: ts("2025-01-13T14:30:00Z"), Status: "completed"},
		{ID: "2", Type: models.ActivityUpgrade, User: "sarah.smith@email.com", Description: "Upgraded from Starter to Ultra Speed", Timestamp: ts("2025-01-13T13:45:00Z"), Status: "completed"},
		{ID: "3", Type: models.ActivitySupport, User: "mike.johnson@email.com", Description: "Speed issue reported and resolved", Timestamp: ts("2025-01-13T12:20:00Z"), Status: "completed"},
		{ID: "4", Type: models.ActivityCancellation, User: "lisa.brown@email.com", Description: "Cancelled subscription - moving", Timestamp: ts("2025-01-13T11:15:00Z"), Status: "completed"},
		{ID: "5", Type: models.ActivityDowngrade, User: "alex.wilson@email.com", Description: "Downgraded from Ultra to Home Pro", Timestamp: ts("2025-01-13T10:30:00Z"), Status: "pending"},
	}
}

func SystemAlerts() []models.SystemAlert {
	return []models.SystemAlert{
		{ID: "1", Type: "warning", Title: "High Server Load", Description: "Server load is at 85% capacity in Region East", Timestamp: ts("2025-01-13T15:00:00Z")},
		{ID: "2", Type: "info", Title: "Maintenance Scheduled", Description: "Routine maintenance scheduled for January 20, 2025", Timestamp: ts("2025-01-13T09:00:00Z")},
		{ID: "3", Type: "error", Title: "Payment Gateway Issue", Description: "Temporary payment processing delays resolved", Timestamp: ts("2025-01-12T16:30:00Z"), Resolved: true},
	}
}

func SubscriptionTrends() []models.SubscriptionTrend {
	return []models.SubscriptionTrend{
		{Month: "Jul", Active: 42000, Cancelled: 1200, New: 3500},
		{Month: "Aug", Active: 44300, Cancelled: 1100, New: 3800},
		{Month: "Sep", Active: 46800, Cancelled: 1300, New: 4200},
		{Month: "Oct", Active: 48200, Cancelled: 1000, New: 3900},
		{Month: "Nov", Active: 49800, Cancelled: 1400, New: 4100},
		{Month: "Dec", Active: 51200, Cancelled: 1200, New: 4300},
		{Month: "Jan", Active: 52800, Cancelled: 1100, New: 4500},
	}
}

func Revenue() []models.RevenuePoint {
	return []models.RevenuePoint{
		{Month: "Jul", Revenue: 2456000, Growth: 8.2},
		{Month: "Aug", Revenue: 2587000, Growth: 5.3},
		{Month: "Sep", Revenue: 2698000, Growth: 4.3},
		{Month: "Oct", Revenue: 2734000, Growth: 1.3},
		{Month: "Nov", Revenue: 2789000, Growth: 2.0},
		{Month: "Dec", Revenue: 2823000, Growth: 1.2},
		{Month: "Jan", Revenue: 2847000, Growth: 0.8},
	}
}

func Churn() []models.ChurnReason {
	return []models.ChurnReason{
		{Reason: "Moving", Count: 145, Percentage: 32.1},
		{Reason: "Price", Count: 98, Percentage: 21.7},
		{Reason: "Speed Issues", Count: 76, Percentage: 16.8},
		{Reason: "Customer Service", Count: 54, Percentage: 12.0},
		{Reason: "Competition", Count: 43, Percentage: 9.5},
		{Reason: "Other", Count: 36, Percentage: 8.0},
	}
}

func Performance() []models.PerformanceMetric {
	return []models.PerformanceMetric{
		{Metric: "Average Speed", Value: 187.5, Unit: "Mbps", Change: 2.3, Target: 180},
		{Metric: "Uptime", Value: 99.97, Unit: "%", Change: 0.02, Target: 99.9},
		{Metric: "Customer Satisfaction", Value: 4.7, Unit: "/5", Change: 0.1, Target: 4.5},
		{Metric: "Support Response", Value: 2.3, Unit: "hours", Change: -0.5, Target: 4.0},
	}
}

func TopPlans() []models.TopPlan {
	return []models.TopPlan{
		{Name: "Home Pro", Subscribers: 24680, Revenue: 1467192, Growth: 12.5},
		{Name: "Ultra Speed", Subscribers: 12340, Revenue: 1233966, Growth: 8.7},
		{Name: "Starter Connect", Subscribers: 8420, Revenue: 252479, Growth: -2.1},
		{Name: "Business Elite", Subscribers: 2952, Revenue: 590448, Growth: 15.3},
	}
}
