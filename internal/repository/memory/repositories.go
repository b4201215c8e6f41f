package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"lumenquest/internal/models"
	"lumenquest/internal/repository"
)

type PlanRepository struct {
	rows *table[models.Plan]
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{rows: newTable(func(p models.Plan) string { return p.ID })}
}

func (r *PlanRepository) List(context.Context) ([]models.Plan, error) {
	plans := r.rows.all()
	for i := range plans {
		plans[i].Features = slices.Clone(plans[i].Features)
	}
	return plans, nil
}

func (r *PlanRepository) GetByID(_ context.Context, id string) (models.Plan, error) {
	plan, ok := r.rows.get(id)
	if !ok {
		return models.Plan{}, repository.ErrPlanNotFound
	}
	plan.Features = slices.Clone(plan.Features)
	return plan, nil
}

func (r *PlanRepository) Create(_ context.Context, plan models.Plan) error {
	plan.Features = slices.Clone(plan.Features)
	r.rows.insert(plan)
	return nil
}

func (r *PlanRepository) Update(_ context.Context, plan models.Plan) error {
	plan.Features = slices.Clone(plan.Features)
	if !r.rows.update(plan.ID, func(p *models.Plan) {
		subscribers, rating, reviews, createdAt := p.Subscribers, p.Rating, p.Reviews, p.CreatedAt
		*p = plan
		p.Subscribers, p.Rating, p.Reviews, p.CreatedAt = subscribers, rating, reviews, createdAt
	}) {
		return repository.ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return repository.ErrPlanNotFound
	}
	return nil
}

type AccountRepository struct {
	rows *table[models.Account]
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{rows: newTable(func(a models.Account) string { return a.ID })}
}

func (r *AccountRepository) List(context.Context) ([]models.Account, error) {
	return r.rows.all(), nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (models.Account, error) {
	account, ok := r.rows.get(id)
	if !ok {
		return models.Account{}, repository.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) Create(_ context.Context, account models.Account) error {
	r.rows.insert(account)
	return nil
}

func (r *AccountRepository) UpdateStatus(_ context.Context, id string, status models.AccountStatus) error {
	if !r.rows.update(id, func(a *models.Account) { a.Status = status }) {
		return repository.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return repository.ErrAccountNotFound
	}
	return nil
}

type UserRepository struct {
	mu      sync.RWMutex
	rows    *table[models.User]
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		rows:    newTable(func(u models.User) string { return u.ID }),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user models.User) error {
	email := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return repository.ErrEmailTaken
	}
	user.Email = email
	r.byEmail[email] = user.ID
	r.rows.insert(user)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[strings.ToLower(email)]
	r.mu.RUnlock()
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	user, ok := r.rows.get(id)
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := r.rows.get(id)
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

type TemplateRepository struct {
	rows *table[models.NotificationTemplate]
}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{rows: newTable(func(t models.NotificationTemplate) string { return t.ID })}
}

func (r *TemplateRepository) List(context.Context) ([]models.NotificationTemplate, error) {
	return r.rows.all(), nil
}

func (r *TemplateRepository) GetByID(_ context.Context, id string) (models.NotificationTemplate, error) {
	tpl, ok := r.rows.get(id)
	if !ok {
		return models.NotificationTemplate{}, repository.ErrTemplateNotFound
	}
	return tpl, nil
}

func (r *TemplateRepository) FindByTitle(_ context.Context, title string) (models.NotificationTemplate, error) {
	for _, tpl := range r.rows.all() {
		if tpl.Title == title {
			return tpl, nil
		}
	}
	return models.NotificationTemplate{}, repository.ErrTemplateNotFound
}

func (r *TemplateRepository) Create(_ context.Context, tpl models.NotificationTemplate) error {
	r.rows.insert(tpl)
	return nil
}

func (r *TemplateRepository) SetActive(_ context.Context, id string, active bool) error {
	if !r.rows.update(id, func(t *models.NotificationTemplate) { t.Active = active }) {
		return repository.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) MarkUsed(_ context.Context, id string, day string, recipients int) error {
	if !r.rows.update(id, func(t *models.NotificationTemplate) {
		t.LastUsed = &day
		t.Recipients += recipients
	}) {
		return repository.ErrTemplateNotFound
	}
	return nil
}

type CampaignRepository struct {
	rows *table[models.Campaign]
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{rows: newTable(func(c models.Campaign) string { return c.ID })}
}

func (r *CampaignRepository) List(context.Context) ([]models.Campaign, error) {
	return r.rows.all(), nil
}

func (r *CampaignRepository) ListDue(_ context.Context, now time.Time) ([]models.Campaign, error) {
	due := make([]models.Campaign, 0)
	for _, c := range r.rows.all() {
		if c.Status == models.CampaignStatusScheduled && !c.ScheduledDate.After(now) {
			due = append(due, c)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].ScheduledDate.Before(due[j].ScheduledDate)
	})
	return due, nil
}

func (r *CampaignRepository) GetByID(_ context.Context, id string) (models.Campaign, error) {
	campaign, ok := r.rows.get(id)
	if !ok {
		return models.Campaign{}, repository.ErrCampaignNotFound
	}
	return campaign, nil
}

func (r *CampaignRepository) Create(_ context.Context, campaign models.Campaign) error {
	r.rows.insert(campaign)
	return nil
}

func (r *CampaignRepository) UpdateStatus(_ context.Context, id string, status models.CampaignStatus) error {
	if !r.rows.update(id, func(c *models.Campaign) { c.Status = status }) {
		return repository.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) ClaimStatus(_ context.Context, id string, from, to models.CampaignStatus) (bool, error) {
	var claimed bool
	if !r.rows.update(id, func(c *models.Campaign) {
		if c.Status == from {
			c.Status = to
			claimed = true
		}
	}) {
		return false, repository.ErrCampaignNotFound
	}
	return claimed, nil
}

type OfferRepository struct {
	rows *table[models.Offer]
}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{rows: newTable(func(o models.Offer) string { return o.ID })}
}

func (r *OfferRepository) List(context.Context) ([]models.Offer, error) {
	return r.rows.all(), nil
}

func (r *OfferRepository) Create(_ context.Context, offer models.Offer) error {
	r.rows.insert(offer)
	return nil
}

type NotificationRepository struct {
	rows *table[models.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{rows: newTable(func(n models.Notification) string { return n.ID })}
}

func (r *NotificationRepository) List(context.Context) ([]models.Notification, error) {
	notifications := r.rows.all()
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

func (r *NotificationRepository) Create(_ context.Context, n models.Notification) error {
	r.rows.insert(n)
	return nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id string) error {
	if !r.rows.update(id, func(n *models.Notification) { n.Read = true }) {
		return repository.ErrNotificationNotFound
	}
	return nil
}

type SubscriptionRepository struct {
	rows *table[models.Subscription]
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{rows: newTable(func(s models.Subscription) string { return s.UserID })}
}

func (r *SubscriptionRepository) GetByUser(_ context.Context, userID string) (models.Subscription, error) {
	sub, ok := r.rows.get(userID)
	if !ok {
		return models.Subscription{}, repository.ErrSubscriptionNotFound
	}
	sub.Features = slices.Clone(sub.Features)
	return sub, nil
}

func (r *SubscriptionRepository) Save(_ context.Context, sub models.Subscription) error {
	sub.Features = slices.Clone(sub.Features)
	r.rows.upsert(sub)
	return nil
}
