package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

const templateColumns = `
	id, title, content, type, category, active, to_char(created_at, 'YYYY-MM-DD'),
	to_char(last_used, 'YYYY-MM-DD'), recipients
`

type TemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

func (r *TemplateRepository) List(ctx context.Context) ([]models.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]models.NotificationTemplate, 0)
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (models.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *TemplateRepository) FindByTitle(ctx context.Context, title string) (models.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE title = $1 ORDER BY position LIMIT 1`
	return r.getOne(ctx, query, title)
}

func (r *TemplateRepository) getOne(ctx context.Context, query string, arg any) (models.NotificationTemplate, error) {
	tpl, err := scanTemplate(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.NotificationTemplate{}, ErrTemplateNotFound
		}
		return models.NotificationTemplate{}, err
	}
	return tpl, nil
}

func (r *TemplateRepository) Create(ctx context.Context, tpl models.NotificationTemplate) error {
	const query = `
		INSERT INTO notification_templates (
			id, title, content, type, category, active, created_at, last_used, recipients
		) VALUES (
			$1, $2, $3, $4, $5, $6, to_date($7, 'YYYY-MM-DD'), to_date($8, 'YYYY-MM-DD'), $9
		)
	`

	_, err := r.pool.Exec(ctx, query,
		tpl.ID,
		tpl.Title,
		tpl.Content,
		tpl.Type,
		tpl.Category,
		tpl.Active,
		tpl.CreatedAt,
		tpl.LastUsed,
		tpl.Recipients,
	)
	return err
}

func (r *TemplateRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE notification_templates SET active = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// MarkUsed records a delivery of the template to recipients on day.
func (r *TemplateRepository) MarkUsed(ctx context.Context, id string, day string, recipients int) error {
	const query = `
		UPDATE notification_templates
		SET last_used = to_date($2, 'YYYY-MM-DD'),
		    recipients = recipients + $3
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, day, recipients)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (models.NotificationTemplate, error) {
	var tpl models.NotificationTemplate
	err := row.Scan(
		&tpl.ID,
		&tpl.Title,
		&tpl.Content,
		&tpl.Type,
		&tpl.Category,
		&tpl.Active,
		&tpl.CreatedAt,
		&tpl.LastUsed,
		&tpl.Recipients,
	)
	return tpl, err
}
