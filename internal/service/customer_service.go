package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lumenquest/internal/filter"
	"lumenquest/internal/fixtures"
	"lumenquest/internal/models"
	"lumenquest/internal/repository"
)

var (
	ErrNotAnUpgrade       = errors.New("plan is not an upgrade")
	ErrNotADowngrade      = errors.New("plan is not a downgrade")
	ErrPlanUnavailable    = errors.New("plan is not available")
	ErrCancelReason       = errors.New("cancellation reason is required")
	ErrSubscriptionClosed = errors.New("subscription is cancelled")
)

// CustomerService backs the customer portal: the signed-in user's
// subscription, offers and notifications.
type CustomerService struct {
	subscriptions SubscriptionRepository
	plans         PlanRepository
	offers        OfferRepository
	notifications NotificationRepository
	log           zerolog.Logger
	now           func() time.Time
}

func NewCustomerService(
	subscriptions SubscriptionRepository,
	plans PlanRepository,
	offers OfferRepository,
	notifications NotificationRepository,
	log zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		subscriptions: subscriptions,
		plans:         plans,
		offers:        offers,
		notifications: notifications,
		log:           log,
		now:           time.Now,
	}
}

// Subscription returns the user's subscription, provisioning the demo
// subscription on first access.
func (s *CustomerService) Subscription(ctx context.Context, userID string) (models.Subscription, error) {
	sub, err := s.subscriptions.GetByUser(ctx, userID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		sub = fixtures.Subscription(userID)
		if err := s.subscriptions.Save(ctx, sub); err != nil {
			return models.Subscription{}, err
		}
		s.log.Info().Str("user_id", userID).Str("subscription_id", sub.ID).Msg("subscription provisioned")
		return sub, nil
	}
	return sub, err
}

func (s *CustomerService) Usage(ctx context.Context, userID string) ([]models.UsageRecord, error) {
	if _, err := s.Subscription(ctx, userID); err != nil {
		return nil, err
	}
	return fixtures.UsageHistory(), nil
}

type PlanOptions struct {
	Upgrades   []models.Plan `json:"upgrades"`
	Downgrades []models.Plan `json:"downgrades"`
}

// Options lists active plans priced above and below the current one.
func (s *CustomerService) Options(ctx context.Context, userID string) (PlanOptions, error) {
	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return PlanOptions{}, err
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return PlanOptions{}, err
	}
	active := filter.Apply(plans, func(p models.Plan) bool { return p.Active })
	return PlanOptions{
		Upgrades:   filter.Apply(active, func(p models.Plan) bool { return p.Price > sub.Price }),
		Downgrades: filter.Apply(active, func(p models.Plan) bool { return p.Price < sub.Price }),
	}, nil
}

// Upgrade switches plans immediately.
func (s *CustomerService) Upgrade(ctx context.Context, userID, planID string) (models.Subscription, error) {
	sub, plan, err := s.change(ctx, userID, planID)
	if err != nil {
		return models.Subscription{}, err
	}
	if plan.Price <= sub.Price {
		return models.Subscription{}, ErrNotAnUpgrade
	}
	applyPlan(&sub, plan)
	sub.PendingPlanID = ""
	return s.save(ctx, sub, "subscription upgraded")
}

// Downgrade takes effect at the next billing date; until then the plan is
// only recorded as pending.
func (s *CustomerService) Downgrade(ctx context.Context, userID, planID string) (models.Subscription, error) {
	sub, plan, err := s.change(ctx, userID, planID)
	if err != nil {
		return models.Subscription{}, err
	}
	if plan.Price >= sub.Price {
		return models.Subscription{}, ErrNotADowngrade
	}
	sub.PendingPlanID = plan.ID
	return s.save(ctx, sub, "subscription downgrade scheduled")
}

func (s *CustomerService) Cancel(ctx context.Context, userID, reason string) (models.Subscription, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Subscription{}, ErrCancelReason
	}
	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return models.Subscription{}, err
	}
	if sub.Status == models.AccountStatusCancelled {
		return models.Subscription{}, ErrSubscriptionClosed
	}
	sub.Status = models.AccountStatusCancelled
	sub.CancelReason = reason
	sub.PendingPlanID = ""
	sub.AutoRenew = false
	return s.save(ctx, sub, "subscription cancelled")
}

// Renew reactivates the subscription and rolls a lapsed billing date
// forward.
func (s *CustomerService) Renew(ctx context.Context, userID string) (models.Subscription, error) {
	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return models.Subscription{}, err
	}
	next, err := time.Parse(models.DateLayout, sub.NextBilling)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("next billing date: %w", err)
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	for !next.After(today) {
		next = next.AddDate(0, 1, 0)
	}
	if sub.Status == models.AccountStatusCancelled {
		next = today.AddDate(0, 1, 0)
	}

	sub.Status = models.AccountStatusActive
	sub.CancelReason = ""
	sub.AutoRenew = true
	sub.NextBilling = next.Format(models.DateLayout)
	return s.save(ctx, sub, "subscription renewed")
}

func (s *CustomerService) Offers(ctx context.Context, category filter.OfferCategoryFilter) ([]models.Offer, error) {
	offers, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Offers(offers, category), nil
}

func (s *CustomerService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *CustomerService) MarkNotificationRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *CustomerService) change(ctx context.Context, userID, planID string) (models.Subscription, models.Plan, error) {
	sub, err := s.Subscription(ctx, userID)
	if err != nil {
		return models.Subscription{}, models.Plan{}, err
	}
	if sub.Status == models.AccountStatusCancelled {
		return models.Subscription{}, models.Plan{}, ErrSubscriptionClosed
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return models.Subscription{}, models.Plan{}, err
	}
	if !plan.Active {
		return models.Subscription{}, models.Plan{}, ErrPlanUnavailable
	}
	return sub, plan, nil
}

func (s *CustomerService) save(ctx context.Context, sub models.Subscription, msg string) (models.Subscription, error) {
	if err := s.subscriptions.Save(ctx, sub); err != nil {
		return models.Subscription{}, err
	}
	s.log.Info().
		Str("user_id", sub.UserID).
		Str("plan_id", sub.PlanID).
		Str("status", string(sub.Status)).
		Msg(msg)
	return sub, nil
}

func applyPlan(sub *models.Subscription, plan models.Plan) {
	sub.PlanID = plan.ID
	sub.PlanName = plan.Name
	sub.Speed = plan.Speed
	sub.DataQuota = plan.DataQuota
	sub.Price = plan.Price
	sub.Features = append([]string(nil), plan.Features...)
}
