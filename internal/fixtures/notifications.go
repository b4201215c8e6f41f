package fixtures

import "lumenquest/internal/models"

func day(v string) *string { return &v }

func rate(v float64) *float64 { return &v }

func Templates() []models.NotificationTemplate {
	return []models.NotificationTemplate{
		{ID: "1", Title: "Welcome New Customer", Content: "Welcome to LUMEN Quest! Your broadband service is now active.", Type: models.TemplateTypeEmail, Category: models.TemplateCategoryService, Active: true, CreatedAt: "2024-01-15", LastUsed: day("2025-01-13"), Recipients: 1247},
		{ID: "2", Title: "Payment Reminder", Content: "Your payment is due in 3 days. Please update your payment method.", Type: models.TemplateTypeEmail, Category: models.TemplateCategoryBilling, Active: true, CreatedAt: "2024-02-01", LastUsed: day("2025-01-12"), Recipients: 892},
		{ID: "3", Title: "Maintenance Notice", Content: "Scheduled maintenance will occur on {date} from {start_time} to {end_time}.", Type: models.TemplateTypeSMS, Category: models.TemplateCategoryMaintenance, Active: true, CreatedAt: "2024-03-10", LastUsed: day("2025-01-10"), Recipients: 48392},
		{ID: "4", Title: "Upgrade Offer", Content: "Upgrade to Ultra Speed for just $20 more per month!", Type: models.TemplateTypePush, Category: models.TemplateCategoryPromotional, Active: true, CreatedAt: "2024-04-05", LastUsed: day("2025-01-08"), Recipients: 12340},
	}
}

func Campaigns() []models.Campaign {
	return []models.Campaign{
		{ID: "1", Name: "January Upgrade Promotion", Template: "Upgrade Offer", TargetAudience: models.AudienceHomePro, ScheduledDate: ts("2025-01-15T10:00:00Z"), Status: models.CampaignStatusScheduled, Recipients: 24680},
		{ID: "2", Name: "Maintenance Alert - Region East", Template: "Maintenance Notice", TargetAudience: models.AudienceAll, ScheduledDate: ts("2025-01-20T08:00:00Z"), Status: models.CampaignStatusScheduled, Recipients: 15420},
		{ID: "3", Name: "Payment Reminder Batch", Template: "Payment Reminder", TargetAudience: models.AudienceInactive, ScheduledDate: ts("2025-01-12T09:00:00Z"), Status: models.CampaignStatusSent, Recipients: 892, OpenRate: rate(78.5), ClickRate: rate(23.1)},
	}
}

func Offers() []models.Offer {
	return []models.Offer{
		{ID: "1", Title: "New Customer Special", Description: "Get 50% off your first 3 months with any premium plan", Type: models.OfferTypeDiscount, Discount: rate(50), OriginalPrice: rate(59.99), NewPrice: rate(29.99), ValidUntil: "2025-03-31", Terms: []string{"Valid for new customers only", "Premium plans only", "Auto-renewal at regular price"}, Featured: true, Category: models.OfferCategoryNewCustomer},
		{ID: "2", Title: "Free Speed Upgrade", Description: "Upgrade to Ultra Speed for the same price as Home Pro", Type: models.OfferTypeUpgrade, ValidUntil: "2025-02-28", Terms: []string{"Existing Home Pro customers", "12-month commitment", "Limited time offer"}, Featured: true, Category: models.OfferCategoryExistingCustomer},
		{ID: "3", Title: "Loyalty Reward", Description: "2 months free for customers with 2+ years of service", Type: models.OfferTypeBonus, ValidUntil: "2025-04-15", Terms: []string{"Minimum 2 years continuous service", "Applied to next billing cycle", "One-time offer"}, Category: models.OfferCategoryLoyalty},
		{ID: "4", Title: "Student Discount", Description: "20% off any plan with valid student ID", Type: models.OfferTypeDiscount, Discount: rate(20), ValidUntil: "2025-08-31", Terms: []string{"Valid student ID required", "Renewable annually", "Cannot combine with other offers"}, Category: models.OfferCategorySeasonal},
		{ID: "5", Title: "Refer a Friend", Description: "Get $25 credit for each friend who signs up", Type: models.OfferTypeBonus, ValidUntil: "2025-12-31", Terms: []string{"Friend must remain active for 3 months", "Maximum 5 referrals per year", "Credit applied to account"}, Category: models.OfferCategoryExistingCustomer},
	}
}

func Notifications() []models.Notification {
	return []models.Notification{
		{ID: "1", Title: "New Offer Available", Message: "You're eligible for our New Customer Special - 50% off for 3 months!", Type: models.NotificationTypePromotion, Timestamp: ts("2025-01-13T10:30:00Z")},
		{ID: "2", Title: "Speed Test Completed", Message: "Your recent speed test shows optimal performance at 98.5 Mbps download.", Type: models.NotificationTypeSuccess, Timestamp: ts("2025-01-12T15:45:00Z")},
		{ID: "3", Title: "Billing Reminder", Message: "Your next billing date is February 15, 2025. Payment method: **** 1234", Type: models.NotificationTypeInfo, Timestamp: ts("2025-01-11T09:00:00Z"), Read: true},
		{ID: "4", Title: "Maintenance Notice", Message: "Scheduled maintenance on January 20, 2025 from 2:00 AM - 4:00 AM EST.", Type: models.NotificationTypeWarning, Timestamp: ts("2025-01-10T14:20:00Z"), Read: true},
	}
}
