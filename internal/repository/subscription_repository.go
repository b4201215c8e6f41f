package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID string) (models.Subscription, error) {
	const query = `
		SELECT id, user_id, plan_id, plan_name, status, speed, data_quota, price,
		       to_char(next_billing, 'YYYY-MM-DD'), usage_data, download_speed, upload_speed,
		       features, pending_plan_id, cancel_reason, auto_renew
		FROM subscriptions WHERE user_id = $1
	`

	row := r.pool.QueryRow(ctx, query, userID)
	var sub models.Subscription
	if err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.PlanName,
		&sub.Status,
		&sub.Speed,
		&sub.DataQuota,
		&sub.Price,
		&sub.NextBilling,
		&sub.UsageData,
		&sub.DownloadSpeed,
		&sub.UploadSpeed,
		&sub.Features,
		&sub.PendingPlanID,
		&sub.CancelReason,
		&sub.AutoRenew,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Subscription{}, ErrSubscriptionNotFound
		}
		return models.Subscription{}, err
	}
	return sub, nil
}

// Save inserts the subscription or replaces the one the user already has.
func (r *SubscriptionRepository) Save(ctx context.Context, sub models.Subscription) error {
	const query = `
		INSERT INTO subscriptions (
			id, user_id, plan_id, plan_name, status, speed, data_quota, price, next_billing,
			usage_data, download_speed, upload_speed, features, pending_plan_id, cancel_reason, auto_renew
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, to_date($9, 'YYYY-MM-DD'),
			$10, $11, $12, $13, $14, $15, $16
		)
		ON CONFLICT (user_id)
		DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			plan_name = EXCLUDED.plan_name,
			status = EXCLUDED.status,
			speed = EXCLUDED.speed,
			data_quota = EXCLUDED.data_quota,
			price = EXCLUDED.price,
			next_billing = EXCLUDED.next_billing,
			usage_data = EXCLUDED.usage_data,
			download_speed = EXCLUDED.download_speed,
			upload_speed = EXCLUDED.upload_speed,
			features = EXCLUDED.features,
			pending_plan_id = EXCLUDED.pending_plan_id,
			cancel_reason = EXCLUDED.cancel_reason,
			auto_renew = EXCLUDED.auto_renew
	`

	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.UserID,
		sub.PlanID,
		sub.PlanName,
		sub.Status,
		sub.Speed,
		sub.DataQuota,
		sub.Price,
		sub.NextBilling,
		sub.UsageData,
		sub.DownloadSpeed,
		sub.UploadSpeed,
		sub.Features,
		sub.PendingPlanID,
		sub.CancelReason,
		sub.AutoRenew,
	)
	return err
}
