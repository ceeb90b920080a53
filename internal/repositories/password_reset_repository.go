package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, userID uuid.UUID, nonce string, expiresAt time.Time) error
	// Get returns the stored token row for (userID, nonce), or nil when no
	// such live row exists.
	Get(ctx context.Context, userID uuid.UUID, nonce string) (*models.PasswordResetToken, error)
	// Consume deletes the row so the nonce can never be redeemed twice.
	Consume(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type passwordResetRepository struct {
	db DB
}

func NewPasswordResetRepository(db DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, userID uuid.UUID, nonce string, expiresAt time.Time) error {
	q := `
        INSERT INTO password_reset_tokens (id, user_id, nonce, expires_at, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `
	_, err := r.db.Exec(ctx, q, uuid.New(), userID, nonce, expiresAt)
	return err
}

func (r *passwordResetRepository) Get(ctx context.Context, userID uuid.UUID, nonce string) (*models.PasswordResetToken, error) {
	q := `
        SELECT id, user_id, nonce, expires_at, created_at
        FROM password_reset_tokens
        WHERE user_id = $1 AND nonce = $2
    `
	row := r.db.QueryRow(ctx, q, userID, nonce)
	var rec models.PasswordResetToken
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Nonce, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *passwordResetRepository) Consume(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM password_reset_tokens WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *passwordResetRepository) CleanupExpired(ctx context.Context) error {
	q := `DELETE FROM password_reset_tokens WHERE expires_at < NOW()`
	_, err := r.db.Exec(ctx, q)
	return err
}
