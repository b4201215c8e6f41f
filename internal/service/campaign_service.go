package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lumenquest/internal/fixtures"
	"lumenquest/internal/ids"
	"lumenquest/internal/models"
	"lumenquest/internal/queue"
	"lumenquest/internal/repository"
	"lumenquest/internal/tasks"
)

var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidCampaign = errors.New("invalid campaign")
)

// newCustomerWindow bounds the "new" audience by join date.
const newCustomerWindow = 30 * 24 * time.Hour

type TaskQueue interface {
	Enqueue(ctx context.Context, task queue.Task) error
}

type CampaignService struct {
	templates TemplateRepository
	campaigns CampaignRepository
	plans     PlanRepository
	accounts  AccountRepository
	queue     TaskQueue
	log       zerolog.Logger
	now       func() time.Time
}

func NewCampaignService(
	templates TemplateRepository,
	campaigns CampaignRepository,
	plans PlanRepository,
	accounts AccountRepository,
	queue TaskQueue,
	log zerolog.Logger,
) *CampaignService {
	return &CampaignService{
		templates: templates,
		campaigns: campaigns,
		plans:     plans,
		accounts:  accounts,
		queue:     queue,
		log:       log,
		now:       time.Now,
	}
}

func (s *CampaignService) Templates(ctx context.Context) ([]models.NotificationTemplate, error) {
	return s.templates.List(ctx)
}

type TemplateInput struct {
	Title    string
	Content  string
	Type     models.TemplateType
	Category models.TemplateCategory
	Active   bool
}

func (s *CampaignService) CreateTemplate(ctx context.Context, in TemplateInput) (models.NotificationTemplate, error) {
	switch {
	case strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "":
		return models.NotificationTemplate{}, fmt.Errorf("%w: title and content are required", ErrInvalidTemplate)
	case !in.Type.Valid():
		return models.NotificationTemplate{}, fmt.Errorf("%w: unknown type %q", ErrInvalidTemplate, in.Type)
	case !in.Category.Valid():
		return models.NotificationTemplate{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTemplate, in.Category)
	}

	tpl := models.NotificationTemplate{
		ID:        ids.New(),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Type:      in.Type,
		Category:  in.Category,
		Active:    in.Active,
		CreatedAt: models.Today(s.now()),
	}
	if err := s.templates.Create(ctx, tpl); err != nil {
		return models.NotificationTemplate{}, err
	}
	s.log.Info().Str("template_id", tpl.ID).Str("title", tpl.Title).Msg("template created")
	return tpl, nil
}

func (s *CampaignService) ToggleTemplate(ctx context.Context, id string) (models.NotificationTemplate, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return models.NotificationTemplate{}, err
	}
	tpl.Active = !tpl.Active
	if err := s.templates.SetActive(ctx, id, tpl.Active); err != nil {
		return models.NotificationTemplate{}, err
	}
	return tpl, nil
}

func (s *CampaignService) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	return s.campaigns.List(ctx)
}

type CampaignInput struct {
	Name           string
	Template       string
	TargetAudience models.Audience
	ScheduledDate  time.Time
}

// CreateCampaign stores a draft. The template is referenced by title and
// must be active.
func (s *CampaignService) CreateCampaign(ctx context.Context, in CampaignInput) (models.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Campaign{}, fmt.Errorf("%w: name is required", ErrInvalidCampaign)
	}
	if !in.TargetAudience.Valid() {
		return models.Campaign{}, fmt.Errorf("%w: unknown audience %q", ErrInvalidCampaign, in.TargetAudience)
	}
	if in.ScheduledDate.IsZero() {
		return models.Campaign{}, fmt.Errorf("%w: scheduled date is required", ErrInvalidCampaign)
	}

	tpl, err := s.templates.FindByTitle(ctx, in.Template)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return models.Campaign{}, fmt.Errorf("%w: unknown template %q", ErrInvalidCampaign, in.Template)
		}
		return models.Campaign{}, err
	}
	if !tpl.Active {
		return models.Campaign{}, fmt.Errorf("%w: template %q is inactive", ErrInvalidCampaign, tpl.Title)
	}

	recipients, err := s.EstimateAudience(ctx, in.TargetAudience)
	if err != nil {
		return models.Campaign{}, err
	}

	campaign := models.Campaign{
		ID:             ids.New(),
		Name:           strings.TrimSpace(in.Name),
		Template:       tpl.Title,
		TargetAudience: in.TargetAudience,
		ScheduledDate:  in.ScheduledDate.UTC(),
		Status:         models.CampaignStatusDraft,
		Recipients:     recipients,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return models.Campaign{}, err
	}
	s.log.Info().Str("campaign_id", campaign.ID).Int("recipients", recipients).Msg("campaign drafted")
	return campaign, nil
}

// Schedule queues a draft for dispatch at its scheduled date.
func (s *CampaignService) Schedule(ctx context.Context, id string) (models.Campaign, error) {
	return s.transition(ctx, id, models.CampaignStatusScheduled, models.CampaignStatusDraft)
}

// Cancel stops a campaign that has not been sent yet.
func (s *CampaignService) Cancel(ctx context.Context, id string) (models.Campaign, error) {
	return s.transition(ctx, id, models.CampaignStatusCancelled, models.CampaignStatusDraft, models.CampaignStatusScheduled)
}

func (s *CampaignService) transition(ctx context.Context, id string, to models.CampaignStatus, from ...models.CampaignStatus) (models.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return models.Campaign{}, err
	}
	allowed := false
	for _, status := range from {
		allowed = allowed || campaign.Status == status
	}
	if !allowed {
		return models.Campaign{}, fmt.Errorf("%w: %s campaign cannot become %s", ErrInvalidTransition, campaign.Status, to)
	}
	if err := s.campaigns.UpdateStatus(ctx, id, to); err != nil {
		return models.Campaign{}, err
	}
	campaign.Status = to
	s.log.Info().Str("campaign_id", id).Str("status", string(to)).Msg("campaign status changed")
	return campaign, nil
}

func (s *CampaignService) Stats(ctx context.Context) (models.CampaignStats, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return models.CampaignStats{}, err
	}
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return models.CampaignStats{}, err
	}

	stats := models.CampaignStats{Templates: len(templates)}
	for _, t := range templates {
		if t.Active {
			stats.ActiveTemplates++
		}
	}
	for _, c := range campaigns {
		if c.Status == models.CampaignStatusScheduled {
			stats.Scheduled++
		}
		stats.TotalRecipients += c.Recipients
	}
	return stats, nil
}

// EstimateAudience sizes a segment: plan segments by the plan's subscriber
// count, "all" by every active plan, "new" by the latest signup figure and
// "inactive" by accounts that are not active.
func (s *CampaignService) EstimateAudience(ctx context.Context, audience models.Audience) (int, error) {
	switch audience {
	case models.AudienceNew:
		return fixtures.DashboardStats().NewSignups, nil
	case models.AudienceInactive:
		accounts, err := s.accounts.List(ctx)
		if err != nil {
			return 0, err
		}
		n := 0
		for _, a := range accounts {
			if a.Status != models.AccountStatusActive {
				n++
			}
		}
		return n, nil
	}

	plans, err := s.plans.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range plans {
		if audience == models.AudienceAll && p.Active {
			total += p.Subscribers
		}
		if p.Name == audience.PlanName() {
			total += p.Subscribers
		}
	}
	return total, nil
}

// Dispatch publishes every scheduled campaign whose time has come and
// marks it sent. It returns how many campaigns went out. A campaign is
// claimed before it is queued, so overlapping runs publish it once.
func (s *CampaignService) Dispatch(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.campaigns.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	var errs []error
	for _, campaign := range due {
		ok, err := s.dispatchOne(ctx, campaign, now)
		if err != nil {
			s.log.Error().Err(err).Str("campaign_id", campaign.ID).Msg("dispatch campaign failed")
			errs = append(errs, err)
			continue
		}
		if ok {
			sent++
		}
	}
	return sent, errors.Join(errs...)
}

func (s *CampaignService) dispatchOne(ctx context.Context, campaign models.Campaign, now time.Time) (bool, error) {
	tpl, err := s.templates.FindByTitle(ctx, campaign.Template)
	if err != nil {
		return false, fmt.Errorf("template %q: %w", campaign.Template, err)
	}

	delivery := tasks.Delivery{
		CampaignID: campaign.ID,
		TemplateID: tpl.ID,
		Channel:    string(tpl.Type),
		Audience:   string(campaign.TargetAudience),
		Subject:    tpl.Title,
		Body:       tpl.Content,
		Recipients: campaign.Recipients,
	}
	if tpl.Type == models.TemplateTypeEmail {
		delivery.To, err = s.audienceEmails(ctx, campaign.TargetAudience, now)
		if err != nil {
			return false, err
		}
	}

	claimed, err := s.campaigns.ClaimStatus(ctx, campaign.ID, models.CampaignStatusScheduled, models.CampaignStatusSent)
	if err != nil {
		return false, err
	}
	if !claimed {
		s.log.Debug().Str("campaign_id", campaign.ID).Msg("campaign already claimed")
		return false, nil
	}

	if err := s.queue.Enqueue(ctx, delivery); err != nil {
		if _, rerr := s.campaigns.ClaimStatus(ctx, campaign.ID, models.CampaignStatusSent, models.CampaignStatusScheduled); rerr != nil {
			s.log.Error().Err(rerr).Str("campaign_id", campaign.ID).Msg("release campaign claim")
		}
		return false, err
	}
	if err := s.templates.MarkUsed(ctx, tpl.ID, models.Today(now), campaign.Recipients); err != nil {
		s.log.Warn().Err(err).Str("template_id", tpl.ID).Msg("record template usage")
	}
	s.log.Info().
		Str("campaign_id", campaign.ID).
		Str("channel", delivery.Channel).
		Int("recipients", campaign.Recipients).
		Msg("campaign dispatched")
	return true, nil
}

// audienceEmails lists the known account addresses in a segment.
func (s *CampaignService) audienceEmails(ctx context.Context, audience models.Audience, now time.Time) ([]string, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(accounts))
	for _, a := range accounts {
		var match bool
		switch audience {
		case models.AudienceAll:
			match = a.Status == models.AccountStatusActive
		case models.AudienceInactive:
			match = a.Status != models.AccountStatusActive
		case models.AudienceNew:
			joined, err := time.Parse(models.DateLayout, a.JoinDate)
			match = err == nil && now.Sub(joined) <= newCustomerWindow
		default:
			match = a.Status == models.AccountStatusActive && a.Plan == audience.PlanName()
		}
		if match {
			emails = append(emails, a.Email)
		}
	}
	return emails, nil
}
