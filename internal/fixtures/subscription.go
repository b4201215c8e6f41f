package fixtures

import "lumenquest/internal/models"

// Subscription is the demo subscription every customer starts with.
func Subscription(userID string) models.Subscription {
	return models.Subscription{
		ID:            "sub_" + userID,
		UserID:        userID,
		PlanID:        "2",
		PlanName:      "Home Pro",
		Status:        models.AccountStatusActive,
		Speed:         "100 Mbps",
		DataQuota:     "Unlimited",
		Price:         59.99,
		NextBilling:   "2025-02-15",
		UsageData:     847.5,
		DownloadSpeed: 98.5,
		UploadSpeed:   19.2,
		Features:      []string{"24/7 Support", "Advanced Security", "5 Devices", "Free Router"},
		AutoRenew:     true,
	}
}

func UsageHistory() []models.UsageRecord {
	return []models.UsageRecord{
		{Month: "Jan 2025", Usage: 847.5},
		{Month: "Dec 2024", Usage: 923.2},
		{Month: "Nov 2024", Usage: 756.8},
		{Month: "Oct 2024", Usage: 892.1},
		{Month: "Sep 2024", Usage: 678.9},
		{Month: "Aug 2024", Usage: 834.7},
	}
}
