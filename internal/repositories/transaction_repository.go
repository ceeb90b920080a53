package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)

	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo struct {
	db DB
}

func NewTransactionRepository(db DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO transactions (
            id, user_id, property_id, status, payment_method, total_amount,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW())
    `,
		t.ID, t.UserID, t.PropertyID, t.Status, t.PaymentMethod, t.TotalAmount,
	)
	return err
}

func (r *transactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return scanTransaction(r.db.QueryRow(ctx, baseSelectTransaction()+" WHERE id=$1", id))
}

func (r *transactionRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	rows, err := r.db.Query(ctx, baseSelectTransaction()+" WHERE user_id=$1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *transactionRepo) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := r.db.Query(ctx, baseSelectTransaction()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *transactionRepo) Update(ctx context.Context, t *models.Transaction) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE transactions SET
            status=$1, payment_method=$2, total_amount=$3, updated_at=NOW()
        WHERE id=$4
    `, t.Status, t.PaymentMethod, t.TotalAmount, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func baseSelectTransaction() string {
	return `
        SELECT id, user_id, property_id, status, payment_method, total_amount,
               created_at, updated_at
        FROM transactions
    `
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.PropertyID,
		&t.Status,
		&t.PaymentMethod,
		&t.TotalAmount,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
