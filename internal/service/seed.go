package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"lumenquest/internal/fixtures"
)

// SeedFixtures loads the demo catalogue into every empty repository, so it
// is safe to run on each start.
func SeedFixtures(ctx context.Context, repos Repositories, log zerolog.Logger) error {
	plans, err := repos.Plans.List(ctx)
	if err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	if len(plans) == 0 {
		for _, p := range fixtures.Plans() {
			if err := repos.Plans.Create(ctx, p); err != nil {
				return fmt.Errorf("seed plan %s: %w", p.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Plans())).Msg("seeded plans")
	}

	accounts, err := repos.Accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if len(accounts) == 0 {
		for _, a := range fixtures.Accounts() {
			if err := repos.Accounts.Create(ctx, a); err != nil {
				return fmt.Errorf("seed account %s: %w", a.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Accounts())).Msg("seeded accounts")
	}

	templates, err := repos.Templates.List(ctx)
	if err != nil {
		return fmt.Errorf("seed templates: %w", err)
	}
	if len(templates) == 0 {
		for _, t := range fixtures.Templates() {
			if err := repos.Templates.Create(ctx, t); err != nil {
				return fmt.Errorf("seed template %s: %w", t.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Templates())).Msg("seeded templates")
	}

	campaigns, err := repos.Campaigns.List(ctx)
	if err != nil {
		return fmt.Errorf("seed campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		for _, c := range fixtures.Campaigns() {
			if err := repos.Campaigns.Create(ctx, c); err != nil {
				return fmt.Errorf("seed campaign %s: %w", c.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Campaigns())).Msg("seeded campaigns")
	}

	offers, err := repos.Offers.List(ctx)
	if err != nil {
		return fmt.Errorf("seed offers: %w", err)
	}
	if len(offers) == 0 {
		for _, o := range fixtures.Offers() {
			if err := repos.Offers.Create(ctx, o); err != nil {
				return fmt.Errorf("seed offer %s: %w", o.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Offers())).Msg("seeded offers")
	}

	notifications, err := repos.Notifications.List(ctx)
	if err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}
	if len(notifications) == 0 {
		for _, n := range fixtures.Notifications() {
			if err := repos.Notifications.Create(ctx, n); err != nil {
				return fmt.Errorf("seed notification %s: %w", n.ID, err)
			}
		}
		log.Info().Int("count", len(fixtures.Notifications())).Msg("seeded notifications")
	}
	return nil
}

// SeedDemoUsers stores the two demo logins unless their emails exist.
func SeedDemoUsers(ctx context.Context, auth *AuthService) error {
	for _, u := range fixtures.DemoUsers() {
		if err := auth.SeedUser(ctx, u.ID, u.Email, u.Password, u.FirstName, u.LastName, u.Role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}
