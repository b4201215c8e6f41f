package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

const planColumns = `
	id, name, description, speed, download_speed, upload_speed, data_quota, price,
	original_price, category, features, popular, rating, reviews, active, subscribers,
	to_char(created_at, 'YYYY-MM-DD'), to_char(updated_at, 'YYYY-MM-DD')
`

type PlanRepository struct {
	pool *pgxpool.Pool
}

func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

func (r *PlanRepository) List(ctx context.Context) ([]models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`

	plan, err := scanPlan(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Plan{}, ErrPlanNotFound
		}
		return models.Plan{}, err
	}
	return plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan models.Plan) error {
	const query = `
		INSERT INTO plans (
			id, name, description, speed, download_speed, upload_speed, data_quota, price,
			original_price, category, features, popular, rating, reviews, active, subscribers,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16,
			to_date($17, 'YYYY-MM-DD'), to_date($18, 'YYYY-MM-DD')
		)
	`

	_, err := r.pool.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		plan.Speed,
		plan.DownloadSpeed,
		plan.UploadSpeed,
		plan.DataQuota,
		plan.Price,
		plan.OriginalPrice,
		plan.Category,
		plan.Features,
		plan.Popular,
		plan.Rating,
		plan.Reviews,
		plan.Active,
		plan.Subscribers,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	return err
}

func (r *PlanRepository) Update(ctx context.Context, plan models.Plan) error {
	const query = `
		UPDATE plans
		SET name = $2,
		    description = $3,
		    speed = $4,
		    download_speed = $5,
		    upload_speed = $6,
		    data_quota = $7,
		    price = $8,
		    original_price = $9,
		    category = $10,
		    features = $11,
		    popular = $12,
		    active = $13,
		    updated_at = to_date($14, 'YYYY-MM-DD')
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Description,
		plan.Speed,
		plan.DownloadSpeed,
		plan.UploadSpeed,
		plan.DataQuota,
		plan.Price,
		plan.OriginalPrice,
		plan.Category,
		plan.Features,
		plan.Popular,
		plan.Active,
		plan.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM plans WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func scanPlan(row pgx.Row) (models.Plan, error) {
	var plan models.Plan
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Speed,
		&plan.DownloadSpeed,
		&plan.UploadSpeed,
		&plan.DataQuota,
		&plan.Price,
		&plan.OriginalPrice,
		&plan.Category,
		&plan.Features,
		&plan.Popular,
		&plan.Rating,
		&plan.Reviews,
		&plan.Active,
		&plan.Subscribers,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	return plan, err
}
