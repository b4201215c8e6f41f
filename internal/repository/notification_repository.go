package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// List returns the inbox newest first.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	const query = `
		SELECT id, title, message, type, created_at, read
		FROM notifications
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Timestamp, &n.Read); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) Create(ctx context.Context, n models.Notification) error {
	const query = `
		INSERT INTO notifications (id, title, message, type, created_at, read)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, n.ID, n.Title, n.Message, n.Type, n.Timestamp, n.Read)
	return err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	const query = `UPDATE notifications SET read = TRUE WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
