package services

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type RateLimiterService interface {
	// CheckForgotPassword enforces the per-IP hourly cap on reset emails.
	CheckForgotPassword(ctx context.Context, clientIP string) error
}

type rateLimiterService struct {
	cfg  *config.Config
	repo repositories.RateLimitRepository
}

func NewRateLimiterService(cfg *config.Config, repo repositories.RateLimitRepository) RateLimiterService {
	return &rateLimiterService{cfg: cfg, repo: repo}
}

func (s *rateLimiterService) CheckForgotPassword(ctx context.Context, clientIP string) error {
	key := "forgot_password:" + clientIP

	allowed, retryAfter, err := s.repo.IncrementAndCheck(ctx, key, s.cfg.ForgotPasswordLimitPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		minutes := int(math.Ceil(retryAfter.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return &utils.AppError{
			StatusCode: http.StatusTooManyRequests,
			Code:       utils.ErrCodeRateLimitExceeded,
			Message:    fmt.Sprintf("Too many password reset requests. Try again in %d minute(s).", minutes),
			Err:        utils.ErrRateLimitExceeded,
		}
	}
	return nil
}
