package models

import (
	"fmt"
	"time"
)

type PlanCategory string

const (
	PlanCategoryBasic      PlanCategory = "basic"
	PlanCategoryPremium    PlanCategory = "premium"
	PlanCategoryEnterprise PlanCategory = "enterprise"
)

func (c PlanCategory) Valid() bool {
	switch c {
	case PlanCategoryBasic, PlanCategoryPremium, PlanCategoryEnterprise:
		return true
	}
	return false
}

// DateLayout is the calendar-day format used for record dates.
const DateLayout = "2006-01-02"

type Plan struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Speed         string       `json:"speed"`
	DownloadSpeed int          `json:"downloadSpeed"`
	UploadSpeed   int          `json:"uploadSpeed"`
	DataQuota     string       `json:"dataQuota"`
	Price         float64      `json:"price"`
	OriginalPrice *float64     `json:"originalPrice,omitempty"`
	Category      PlanCategory `json:"category"`
	Features      []string     `json:"features"`
	Popular       bool         `json:"popular"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	Active        bool         `json:"active"`
	Subscribers   int          `json:"subscribers"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

// SpeedLabel is the display label derived from a download speed in Mbps.
func SpeedLabel(downloadSpeed int) string {
	return fmt.Sprintf("%d Mbps", downloadSpeed)
}

func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// Savings is the discount against the original price, zero when the plan
// is not discounted.
func (p Plan) Savings() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return *p.OriginalPrice - p.Price
}
