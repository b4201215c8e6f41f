package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) List(ctx context.Context) ([]models.Offer, error) {
	const query = `
		SELECT id, title, description, type, discount, original_price, new_price,
		       to_char(valid_until, 'YYYY-MM-DD'), terms, featured, category
		FROM offers
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		var offer models.Offer
		if err := rows.Scan(
			&offer.ID,
			&offer.Title,
			&offer.Description,
			&offer.Type,
			&offer.Discount,
			&offer.OriginalPrice,
			&offer.NewPrice,
			&offer.ValidUntil,
			&offer.Terms,
			&offer.Featured,
			&offer.Category,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) Create(ctx context.Context, offer models.Offer) error {
	const query = `
		INSERT INTO offers (
			id, title, description, type, discount, original_price, new_price,
			valid_until, terms, featured, category
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, to_date($8, 'YYYY-MM-DD'), $9, $10, $11
		)
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Type,
		offer.Discount,
		offer.OriginalPrice,
		offer.NewPrice,
		offer.ValidUntil,
		offer.Terms,
		offer.Featured,
		offer.Category,
	)
	return err
}
