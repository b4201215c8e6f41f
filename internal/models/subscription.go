package models

type Subscription struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	PlanID        string        `json:"planId"`
	PlanName      string        `json:"planName"`
	Status        AccountStatus `json:"status"`
	Speed         string        `json:"speed"`
	DataQuota     string        `json:"dataQuota"`
	Price         float64       `json:"price"`
	NextBilling   string        `json:"nextBilling"`
	UsageData     float64       `json:"usageData"`
	UsagePercent  float64       `json:"usagePercent"`
	DownloadSpeed float64       `json:"downloadSpeed"`
	UploadSpeed   float64       `json:"uploadSpeed"`
	Features      []string      `json:"features"`
	PendingPlanID string        `json:"pendingPlanId,omitempty"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	AutoRenew     bool          `json:"autoRenew"`
}

// Unlimited reports whether the data quota has no cap.
func (s Subscription) Unlimited() bool {
	return s.DataQuota == "Unlimited"
}

type UsageRecord struct {
	Month string  `json:"month"`
	Usage float64 `json:"usage"`
	Limit float64 `json:"limit"`
}
