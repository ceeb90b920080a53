package services

import (
	"context"
	"errors"

	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// CleanupService prunes expired verification codes, reset tokens, refresh
// tokens and rate-limit rows. It is driven by the daily cron schedule.
type CleanupService struct {
	codes    repositories.EmailVerificationRepository
	resets   repositories.PasswordResetRepository
	sessions repositories.RefreshTokenRepository
	limits   repositories.RateLimitRepository
}

func NewCleanupService(
	codes repositories.EmailVerificationRepository,
	resets repositories.PasswordResetRepository,
	sessions repositories.RefreshTokenRepository,
	limits repositories.RateLimitRepository,
) *CleanupService {
	return &CleanupService{
		codes:    codes,
		resets:   resets,
		sessions: sessions,
		limits:   limits,
	}
}

func (s *CleanupService) CleanupDaily(ctx context.Context) error {
	var errs []error

	jobs := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"verification_codes", s.codes.CleanupExpired},
		{"reset_tokens", s.resets.CleanupExpired},
		{"refresh_tokens", s.sessions.CleanupExpired},
		{"rate_limits", s.limits.CleanupExpired},
	}

	for _, job := range jobs {
		if err := job.fn(ctx); err != nil {
			utils.Logger.WithError(err).WithField("job", job.name).Error("cleanup failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
