package service

import (
	"context"
	"time"

	"lumenquest/internal/models"
)

type PlanRepository interface {
	List(ctx context.Context) ([]models.Plan, error)
	GetByID(ctx context.Context, id string) (models.Plan, error)
	Create(ctx context.Context, plan models.Plan) error
	Update(ctx context.Context, plan models.Plan) error
	Delete(ctx context.Context, id string) error
}

type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id string) (models.Account, error)
	Create(ctx context.Context, account models.Account) error
	UpdateStatus(ctx context.Context, id string, status models.AccountStatus) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

type TemplateRepository interface {
	List(ctx context.Context) ([]models.NotificationTemplate, error)
	GetByID(ctx context.Context, id string) (models.NotificationTemplate, error)
	FindByTitle(ctx context.Context, title string) (models.NotificationTemplate, error)
	Create(ctx context.Context, tpl models.NotificationTemplate) error
	SetActive(ctx context.Context, id string, active bool) error
	MarkUsed(ctx context.Context, id string, day string, recipients int) error
}

type CampaignRepository interface {
	List(ctx context.Context) ([]models.Campaign, error)
	ListDue(ctx context.Context, now time.Time) ([]models.Campaign, error)
	GetByID(ctx context.Context, id string) (models.Campaign, error)
	Create(ctx context.Context, campaign models.Campaign) error
	UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) error
	ClaimStatus(ctx context.Context, id string, from, to models.CampaignStatus) (bool, error)
}

type OfferRepository interface {
	List(ctx context.Context) ([]models.Offer, error)
	Create(ctx context.Context, offer models.Offer) error
}

type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, n models.Notification) error
	MarkRead(ctx context.Context, id string) error
}

type SubscriptionRepository interface {
	GetByUser(ctx context.Context, userID string) (models.Subscription, error)
	Save(ctx context.Context, sub models.Subscription) error
}

// Repositories groups the storage backends of one driver.
type Repositories struct {
	Plans         PlanRepository
	Accounts      AccountRepository
	Users         UserRepository
	Templates     TemplateRepository
	Campaigns     CampaignRepository
	Offers        OfferRepository
	Notifications NotificationRepository
	Subscriptions SubscriptionRepository
}
