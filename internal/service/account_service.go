package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"lumenquest/internal/filter"
	"lumenquest/internal/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type AccountService struct {
	accounts AccountRepository
	log      zerolog.Logger
}

func NewAccountService(accounts AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, log: log}
}

func (s *AccountService) List(ctx context.Context, f filter.AccountFilter) ([]models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Accounts(accounts, f), nil
}

// Summary aggregates over every account regardless of any filter.
func (s *AccountService) Summary(ctx context.Context) (models.AccountSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return models.AccountSummary{}, err
	}
	summary := models.AccountSummary{
		Total: len(accounts),
		Plans: filter.DistinctPlans(accounts),
	}
	for _, a := range accounts {
		if a.Status == models.AccountStatusActive {
			summary.Active++
		}
		summary.TotalRevenue += a.TotalSpent
		summary.SupportTickets += a.SupportTickets
	}
	return summary, nil
}

func (s *AccountService) Suspend(ctx context.Context, id string) (models.Account, error) {
	return s.transition(ctx, id, models.AccountStatusActive, models.AccountStatusSuspended)
}

func (s *AccountService) Reactivate(ctx context.Context, id string) (models.Account, error) {
	return s.transition(ctx, id, models.AccountStatusSuspended, models.AccountStatusActive)
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("account_id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) transition(ctx context.Context, id string, from, to models.AccountStatus) (models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if account.Status != from {
		return models.Account{}, fmt.Errorf("%w: %s account cannot become %s", ErrInvalidTransition, account.Status, to)
	}
	if err := s.accounts.UpdateStatus(ctx, id, to); err != nil {
		return models.Account{}, err
	}
	account.Status = to
	s.log.Info().Str("account_id", id).Str("status", string(to)).Msg("account status changed")
	return account, nil
}
