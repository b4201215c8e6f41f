package models

import "time"

type TemplateType string

const (
	TemplateTypeEmail TemplateType = "email"
	TemplateTypeSMS   TemplateType = "sms"
	TemplateTypePush  TemplateType = "push"
	TemplateTypeInApp TemplateType = "in-app"
)

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateTypeEmail, TemplateTypeSMS, TemplateTypePush, TemplateTypeInApp:
		return true
	}
	return false
}

type TemplateCategory string

const (
	TemplateCategoryPromotional TemplateCategory = "promotional"
	TemplateCategoryService     TemplateCategory = "service"
	TemplateCategoryBilling     TemplateCategory = "billing"
	TemplateCategoryMaintenance TemplateCategory = "maintenance"
)

func (c TemplateCategory) Valid() bool {
	switch c {
	case TemplateCategoryPromotional, TemplateCategoryService, TemplateCategoryBilling, TemplateCategoryMaintenance:
		return true
	}
	return false
}

type NotificationTemplate struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Type       TemplateType     `json:"type"`
	Category   TemplateCategory `json:"category"`
	Active     bool             `json:"active"`
	CreatedAt  string           `json:"createdAt"`
	LastUsed   *string          `json:"lastUsed,omitempty"`
	Recipients int              `json:"recipients"`
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// Audience is a target segment of a campaign.
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceStarter  Audience = "starter"
	AudienceHomePro  Audience = "home-pro"
	AudienceUltra    Audience = "ultra"
	AudienceBusiness Audience = "business"
	AudienceNew      Audience = "new"
	AudienceInactive Audience = "inactive"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceStarter, AudienceHomePro, AudienceUltra, AudienceBusiness, AudienceNew, AudienceInactive:
		return true
	}
	return false
}

// PlanName is the plan an audience segment is built from, empty for
// segments that are not plan based.
func (a Audience) PlanName() string {
	switch a {
	case AudienceStarter:
		return "Starter Connect"
	case AudienceHomePro:
		return "Home Pro"
	case AudienceUltra:
		return "Ultra Speed"
	case AudienceBusiness:
		return "Business Elite"
	}
	return ""
}

// Campaign references its template by title.
type Campaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Template       string         `json:"template"`
	TargetAudience Audience       `json:"targetAudience"`
	ScheduledDate  time.Time      `json:"scheduledDate"`
	Status         CampaignStatus `json:"status"`
	Recipients     int            `json:"recipients"`
	OpenRate       *float64       `json:"openRate,omitempty"`
	ClickRate      *float64       `json:"clickRate,omitempty"`
}

type CampaignStats struct {
	Templates       int `json:"templates"`
	ActiveTemplates int `json:"activeTemplates"`
	Scheduled       int `json:"scheduled"`
	TotalRecipients int `json:"totalRecipients"`
}
