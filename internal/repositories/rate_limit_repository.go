package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
)

// RateLimitRepository provides an atomic way to check and increment rate limit counters.
type RateLimitRepository interface {
	// IncrementAndCheck atomically increments a counter for the given key and
	// checks it against the limit. It returns whether the request is allowed
	// and, when it is not, how long until the counter's window resets.
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
	// CleanupExpired removes all counter keys that have expired.
	CleanupExpired(ctx context.Context) error
}

type rateLimitRepository struct {
	db DB
}

func NewRateLimitRepository(db DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

func (r *rateLimitRepository) IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	query := `
        INSERT INTO rate_limit_attempts (key, attempt_count, expires_at)
        VALUES ($1, 1, NOW() + $2::interval)
        ON CONFLICT (key) DO UPDATE
        SET attempt_count = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN 1
            ELSE rate_limit_attempts.attempt_count + 1
        END,
        expires_at = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN NOW() + $2::interval
            ELSE rate_limit_attempts.expires_at
        END
        RETURNING attempt_count, expires_at;
    `

	var (
		currentCount int
		expiresAt    time.Time
	)
	err := r.db.QueryRow(ctx, query, key, window).Scan(&currentCount, &expiresAt)
	if err != nil && err != pgx.ErrNoRows {
		return false, 0, err
	}

	if currentCount <= limit {
		return true, 0, nil
	}
	return false, time.Until(expiresAt), nil
}

func (r *rateLimitRepository) CleanupExpired(ctx context.Context) error {
	query := `DELETE FROM rate_limit_attempts WHERE expires_at < NOW()`
	_, err := r.db.Exec(ctx, query)
	return err
}
