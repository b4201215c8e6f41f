package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

const campaignColumns = `
	id, name, template, target_audience, scheduled_date, status, recipients, open_rate, click_rate
`

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) List(ctx context.Context) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY position`
	return r.list(ctx, query)
}

// ListDue returns scheduled campaigns whose send time is not after now.
func (r *CampaignRepository) ListDue(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE status = 'scheduled' AND scheduled_date <= $1
		ORDER BY scheduled_date, position
	`
	return r.list(ctx, query, now)
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Campaign{}, ErrCampaignNotFound
		}
		return models.Campaign{}, err
	}
	return campaign, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign models.Campaign) error {
	const query = `
		INSERT INTO campaigns (
			id, name, template, target_audience, scheduled_date, status, recipients, open_rate, click_rate
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.pool.Exec(ctx, query,
		campaign.ID,
		campaign.Name,
		campaign.Template,
		campaign.TargetAudience,
		campaign.ScheduledDate,
		campaign.Status,
		campaign.Recipients,
		campaign.OpenRate,
		campaign.ClickRate,
	)
	return err
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status models.CampaignStatus) error {
	const query = `UPDATE campaigns SET status = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// ClaimStatus moves the campaign from one status to another and reports
// false when another caller already moved it.
func (r *CampaignRepository) ClaimStatus(ctx context.Context, id string, from, to models.CampaignStatus) (bool, error) {
	const query = `UPDATE campaigns SET status = $3 WHERE id = $1 AND status = $2`
	cmd, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 1 {
		return true, nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var campaign models.Campaign
	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Template,
		&campaign.TargetAudience,
		&campaign.ScheduledDate,
		&campaign.Status,
		&campaign.Recipients,
		&campaign.OpenRate,
		&campaign.ClickRate,
	)
	return campaign, err
}
