package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// ---------------------------------------------------------------------
// PasswordResetService interface
// ---------------------------------------------------------------------

type PasswordResetService interface {
	// ForgotPassword issues a signed reset link to the given address.
	// Unknown addresses return ErrNotFound.
	ForgotPassword(ctx context.Context, email, clientIP string) error

	// ResetPassword redeems a signed token and sets the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type passwordResetService struct {
	cfg      *config.Config
	users    repositories.UserRepository
	tokens   repositories.PasswordResetRepository
	limiter  RateLimiterService
	mailer   MailerService
	sessions repositories.RefreshTokenRepository
}

func NewPasswordResetService(
	cfg *config.Config,
	users repositories.UserRepository,
	tokens repositories.PasswordResetRepository,
	limiter RateLimiterService,
	mailer MailerService,
	sessions repositories.RefreshTokenRepository,
) PasswordResetService {
	return &passwordResetService{
		cfg:      cfg,
		users:    users,
		tokens:   tokens,
		limiter:  limiter,
		mailer:   mailer,
		sessions: sessions,
	}
}

func (s *passwordResetService) ForgotPassword(ctx context.Context, email, clientIP string) error {
	if err := s.limiter.CheckForgotPassword(ctx, clientIP); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrNotFound
	}

	nonce := generateSecureToken(24)

	expiresAt := time.Now().Add(config.ResetTokenExpiry)
	if err := s.tokens.Create(ctx, user.ID, nonce, expiresAt); err != nil {
		return err
	}

	token := makeResetToken(s.cfg.SecretKey, user.ID, nonce, expiresAt)
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppURL, token)

	return s.mailer.SendPasswordResetLink(user.Email, resetURL)
}

func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, nonce, err := parseResetToken(s.cfg.SecretKey, token)
	if err != nil {
		return utils.ErrInvalidResetToken
	}

	stored, err := s.tokens.Get(ctx, userID, nonce)
	if err != nil {
		return err
	}
	if stored == nil || !time.Now().Before(stored.ExpiresAt) {
		return utils.ErrInvalidResetToken
	}

	if msgs := utils.ValidatePasswordPolicy(newPassword); len(msgs) > 0 {
		return &utils.AppError{
			StatusCode: 400,
			Code:       utils.ErrCodeValidation,
			Message:    strings.Join(msgs, "; "),
		}
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	if err := s.tokens.Consume(ctx, stored.ID); err != nil {
		return err
	}

	// A password change invalidates every open session.
	if err := s.sessions.RemoveAllByUserID(ctx, userID); err != nil {
		utils.Logger.WithError(err).WithField("user_id", userID).
			Warn("failed to revoke sessions after password reset")
	}

	return nil
}

// ---------------------------------------------------------------------
// Token codec
// ---------------------------------------------------------------------

type resetTokenPayload struct {
	UserID uuid.UUID `json:"uid"`
	Nonce  string    `json:"nonce"`
	Exp    int64     `json:"exp"`
}

// makeResetToken produces base64url(payload) + "." + base64url(HMAC-SHA256).
func makeResetToken(key []byte, userID uuid.UUID, nonce string, expiresAt time.Time) string {
	payload, _ := json.Marshal(resetTokenPayload{
		UserID: userID,
		Nonce:  nonce,
		Exp:    expiresAt.Unix(),
	})

	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + base64.RawURLEncoding.EncodeToString(signResetToken(key, body))
}

func parseResetToken(key []byte, token string) (uuid.UUID, string, error) {
	body, sigPart, ok := strings.Cut(token, ".")
	if !ok {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}
	if !hmac.Equal(sig, signResetToken(key, body)) {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}

	var payload resetTokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}
	if time.Now().Unix() > payload.Exp {
		return uuid.Nil, "", utils.ErrInvalidResetToken
	}

	return payload.UserID, payload.Nonce, nil
}

func signResetToken(key []byte, body string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(body))
	return mac.Sum(nil)
}
