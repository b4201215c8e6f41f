package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumenquest/internal/models"
)

const accountColumns = `
	id, name, email, phone, plan_name, status, to_char(join_date, 'YYYY-MM-DD'),
	last_login, total_spent, support_tickets
`

// AccountRepository stores the subscriber records managed from the admin
// user list.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) List(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, err
	}
	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account models.Account) error {
	const query = `
		INSERT INTO accounts (
			id, name, email, phone, plan_name, status, join_date, last_login, total_spent, support_tickets
		) VALUES (
			$1, $2, $3, $4, $5, $6, to_date($7, 'YYYY-MM-DD'), $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Phone,
		account.Plan,
		account.Status,
		account.JoinDate,
		account.LastLogin,
		account.TotalSpent,
		account.SupportTickets,
	)
	return err
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, id string, status models.AccountStatus) error {
	const query = `UPDATE accounts SET status = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM accounts WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Phone,
		&account.Plan,
		&account.Status,
		&account.JoinDate,
		&account.LastLogin,
		&account.TotalSpent,
		&account.SupportTickets,
	)
	return account, err
}
