package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type EmailVerificationRepository interface {
	CreateCode(ctx context.Context, userID uuid.UUID, email, code string, expiresAt time.Time) error
	GetCode(ctx context.Context, email string) (*models.EmailVerificationCode, error)
	DeleteCode(ctx context.Context, id uuid.UUID) error
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type emailVerificationRepository struct {
	db DB
}

func NewEmailVerificationRepository(db DB) EmailVerificationRepository {
	return &emailVerificationRepository{db: db}
}

func (r *emailVerificationRepository) CreateCode(
	ctx context.Context,
	userID uuid.UUID,
	email, code string,
	expiresAt time.Time,
) error {
	q := `
        INSERT INTO email_verification_codes
            (id, user_id, email, verification_code, expires_at, created_at, attempts)
        VALUES ($1, $2, $3, $4, $5, NOW(), 0)
    `
	_, err := r.db.Exec(ctx, q, uuid.New(), userID, email, code, expiresAt)
	return err
}

func (r *emailVerificationRepository) GetCode(ctx context.Context, email string) (*models.EmailVerificationCode, error) {
	q := `
        SELECT id, user_id, email, verification_code, expires_at, attempts, created_at
        FROM email_verification_codes
        WHERE email = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, email)
	var rec models.EmailVerificationCode
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Email,
		&rec.Code,
		&rec.ExpiresAt,
		&rec.Attempts,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *emailVerificationRepository) DeleteCode(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM email_verification_codes WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *emailVerificationRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE email_verification_codes SET attempts = attempts + 1 WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *emailVerificationRepository) CleanupExpired(ctx context.Context) error {
	q := `DELETE FROM email_verification_codes WHERE expires_at < NOW()`
	_, err := r.db.Exec(ctx, q)
	return err
}
