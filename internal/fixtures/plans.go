// Package fixtures holds the demo data the service is seeded with.
package fixtures

import "lumenquest/internal/models"

func price(v float64) *float64 { return &v }

// Plans is the plan catalogue: the six published plans followed by the
// discontinued legacy plan that only admins see.
func Plans() []models.Plan {
	return []models.Plan{
		{
			ID:            "1",
			Name:          "Starter Connect",
			Description:   "Perfect for light browsing and email",
			Speed:         "25 Mbps",
			DownloadSpeed: 25,
			UploadSpeed:   5,
			DataQuota:     "500 GB",
			Price:         29.99,
			OriginalPrice: price(39.99),
			Category:      models.PlanCategoryBasic,
			Features:      []string{"Email Support", "Basic Security", "1 Device"},
			Rating:        4.2,
			Reviews:       1250,
			Active:        true,
			Subscribers:   8420,
			CreatedAt:     "2024-01-15",
			UpdatedAt:     "2024-12-01",
		},
		{
			ID:            "2",
			Name:          "Home Pro",
			Description:   "Ideal for streaming and working from home",
			Speed:         "100 Mbps",
			DownloadSpeed: 100,
			UploadSpeed:   20,
			DataQuota:     "Unlimited",
			Price:         59.99,
			OriginalPrice: price(79.99),
			Category:      models.PlanCategoryPremium,
			Features:      []string{"24/7 Support", "Advanced Security", "5 Devices", "Free Router"},
			Popular:       true,
			Rating:        4.7,
			Reviews:       3420,
			Active:        true,
			Subscribers:   24680,
			CreatedAt:     "2024-01-15",
			UpdatedAt:     "2024-11-15",
		},
		{
			ID:            "3",
			Name:          "Ultra Speed",
			Description:   "Maximum performance for power users",
			Speed:         "500 Mbps",
			DownloadSpeed: 500,
			UploadSpeed:   100,
			DataQuota:     "Unlimited",
			Price:         99.99,
			Category:      models.PlanCategoryPremium,
			Features:      []string{"Priority Support", "Premium Security", "10 Devices", "Mesh Router", "Static IP"},
			Rating:        4.8,
			Reviews:       890,
			Active:        true,
			Subscribers:   12340,
			CreatedAt:     "2024-02-01",
			UpdatedAt:     "2024-10-20",
		},
		{
			ID:            "4",
			Name:          "Business Elite",
			Description:   "Enterprise-grade connectivity",
			Speed:         "1 Gbps",
			DownloadSpeed: 1000,
			UploadSpeed:   500,
			DataQuota:     "Unlimited",
			Price:         199.99,
			Category:      models.PlanCategoryEnterprise,
			Features:      []string{"Dedicated Support", "Enterprise Security", "Unlimited Devices", "SLA Guarantee", "Backup Connection"},
			Rating:        4.9,
			Reviews:       245,
			Active:        true,
			Subscribers:   2952,
			CreatedAt:     "2024-03-01",
			UpdatedAt:     "2024-09-10",
		},
		{
			ID:            "5",
			Name:          "Family Plus",
			Description:   "Great value for families",
			Speed:         "200 Mbps",
			DownloadSpeed: 200,
			UploadSpeed:   50,
			DataQuota:     "Unlimited",
			Price:         79.99,
			Category:      models.PlanCategoryPremium,
			Features:      []string{"Family Controls", "Multiple Profiles", "8 Devices", "Parental Controls"},
			Rating:        4.5,
			Reviews:       2100,
			Active:        true,
			CreatedAt:     "2024-05-01",
			UpdatedAt:     "2024-11-01",
		},
		{
			ID:            "6",
			Name:          "Student Special",
			Description:   "Affordable option for students",
			Speed:         "50 Mbps",
			DownloadSpeed: 50,
			UploadSpeed:   10,
			DataQuota:     "1 TB",
			Price:         39.99,
			OriginalPrice: price(49.99),
			Category:      models.PlanCategoryBasic,
			Features:      []string{"Student Discount", "Flexible Terms", "3 Devices"},
			Rating:        4.3,
			Reviews:       680,
			Active:        true,
			CreatedAt:     "2024-08-15",
			UpdatedAt:     "2024-08-15",
		},
		{
			ID:            "7",
			Name:          "Legacy Basic",
			Description:   "Discontinued basic plan",
			Speed:         "10 Mbps",
			DownloadSpeed: 10,
			UploadSpeed:   2,
			DataQuota:     "100 GB",
			Price:         19.99,
			Category:      models.PlanCategoryBasic,
			Features:      []string{"Email Support", "Basic Security"},
			Active:        false,
			Subscribers:   156,
			CreatedAt:     "2023-01-01",
			UpdatedAt:     "2024-06-01",
		},
	}
}
