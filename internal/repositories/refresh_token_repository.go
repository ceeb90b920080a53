package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RemoveAllByUserID(ctx context.Context, userID uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type refreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(ctx context.Context, rt *models.RefreshToken) error {
	q := `
        INSERT INTO refresh_tokens (id, user_id, token, ip_address, revoked, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, q, rt.ID, rt.UserID, rt.Token, rt.IPAddress, rt.Revoked, rt.ExpiresAt, rt.CreatedAt)
	return err
}

func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	q := `
        SELECT id, user_id, token, ip_address, revoked, expires_at, created_at
        FROM refresh_tokens
        WHERE token = $1
    `
	row := r.db.QueryRow(ctx, q, token)
	var rec models.RefreshToken
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Token, &rec.IPAddress, &rec.Revoked, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET revoked=TRUE WHERE id=$1`, id)
	return err
}

func (r *refreshTokenRepository) RemoveAllByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id=$1`, userID)
	return err
}

func (r *refreshTokenRepository) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE revoked=TRUE OR expires_at < NOW()`)
	return err
}
