package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lumenquest/internal/filter"
	"lumenquest/internal/ids"
	"lumenquest/internal/models"
)

var (
	ErrPlanHasSubscribers = errors.New("plan has active subscribers")
	ErrInvalidPlan        = errors.New("invalid plan")
)

type PlanService struct {
	plans PlanRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewPlanService(plans PlanRepository, log zerolog.Logger) *PlanService {
	return &PlanService{plans: plans, log: log, now: time.Now}
}

// Browse lists the active plans matching f, in catalogue order.
func (s *PlanService) Browse(ctx context.Context, f filter.PlanFilter) ([]models.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	active := filter.Apply(plans, func(p models.Plan) bool { return p.Active })
	return filter.Plans(active, f), nil
}

// List returns every plan, inactive ones included, matching f.
func (s *PlanService) List(ctx context.Context, f filter.PlanFilter) ([]models.Plan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Plans(plans, f), nil
}

func (s *PlanService) Get(ctx context.Context, id string) (models.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

type PlanStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Subscribers    int     `json:"subscribers"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

func (s *PlanService) Stats(ctx context.Context) (PlanStats, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return PlanStats{}, err
	}
	stats := PlanStats{Total: len(plans)}
	for _, p := range plans {
		if p.Active {
			stats.Active++
		}
		stats.Subscribers += p.Subscribers
		stats.MonthlyRevenue += p.Price * float64(p.Subscribers)
	}
	return stats, nil
}

// PlanInput is the editable part of a plan. Features keep their order.
type PlanInput struct {
	Name          string
	Description   string
	DownloadSpeed int
	UploadSpeed   int
	DataQuota     string
	Price         float64
	OriginalPrice *float64
	Category      models.PlanCategory
	Features      []string
	Popular       bool
	Active        bool
}

func (in PlanInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidPlan)
	case in.DownloadSpeed <= 0 || in.UploadSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidPlan)
	case in.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidPlan)
	case !in.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidPlan, in.Category)
	}
	return nil
}

func (in PlanInput) apply(p *models.Plan) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Speed = models.SpeedLabel(in.DownloadSpeed)
	p.DownloadSpeed = in.DownloadSpeed
	p.UploadSpeed = in.UploadSpeed
	p.DataQuota = strings.TrimSpace(in.DataQuota)
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.Category = in.Category
	p.Features = cleanFeatures(in.Features)
	p.Popular = in.Popular
	p.Active = in.Active
}

func (s *PlanService) Create(ctx context.Context, in PlanInput) (models.Plan, error) {
	if err := in.validate(); err != nil {
		return models.Plan{}, err
	}
	today := models.Today(s.now())
	plan := models.Plan{
		ID:        ids.New(),
		CreatedAt: today,
		UpdatedAt: today,
	}
	in.apply(&plan)

	if err := s.plans.Create(ctx, plan); err != nil {
		return models.Plan{}, err
	}
	s.log.Info().Str("plan_id", plan.ID).Str("name", plan.Name).Msg("plan created")
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, id string, in PlanInput) (models.Plan, error) {
	if err := in.validate(); err != nil {
		return models.Plan{}, err
	}
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return models.Plan{}, err
	}
	in.apply(&plan)
	plan.UpdatedAt = models.Today(s.now())

	if err := s.plans.Update(ctx, plan); err != nil {
		return models.Plan{}, err
	}
	s.log.Info().Str("plan_id", plan.ID).Msg("plan updated")
	return plan, nil
}

// ToggleActive flips whether the plan is offered to customers.
func (s *PlanService) ToggleActive(ctx context.Context, id string) (models.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return models.Plan{}, err
	}
	plan.Active = !plan.Active
	plan.UpdatedAt = models.Today(s.now())

	if err := s.plans.Update(ctx, plan); err != nil {
		return models.Plan{}, err
	}
	s.log.Info().Str("plan_id", plan.ID).Bool("active", plan.Active).Msg("plan status changed")
	return plan, nil
}

// Delete removes a plan nobody is subscribed to.
func (s *PlanService) Delete(ctx context.Context, id string) error {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if plan.Subscribers > 0 {
		return fmt.Errorf("%w: %d", ErrPlanHasSubscribers, plan.Subscribers)
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("plan_id", id).Msg("plan deleted")
	return nil
}

func cleanFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
