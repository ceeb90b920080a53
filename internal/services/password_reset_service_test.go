package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

func newTestResetService(t *testing.T) (PasswordResetService, *fakeUserRepo, *fakeResetRepo, *fakeMailer, *fakeRefreshRepo) {
	t.Helper()
	cfg := testConfig()
	users := newFakeUserRepo()
	tokens := newFakeResetRepo()
	mailer := newFakeMailer()
	sessions := newFakeRefreshRepo()
	limiter := NewRateLimiterService(cfg, newFakeRateLimitRepo())
	svc := NewPasswordResetService(cfg, users, tokens, limiter, mailer, sessions)
	return svc, users, tokens, mailer, sessions
}

func seedActiveUser(t *testing.T, users *fakeUserRepo, email, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := models.NewIndividualUser(email, hash, "Ada", "Obi")
	user.IsActive = true
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func extractToken(t *testing.T, resetURL string) string {
	t.Helper()
	_, token, ok := strings.Cut(resetURL, "token=")
	require.True(t, ok, "reset URL should carry a token parameter")
	return token
}

func TestResetTokenRoundTrip(t *testing.T) {
	key := []byte("test-secret-key-32-bytes-long!!!")
	userID := uuid.New()
	token := makeResetToken(key, userID, "nonce-abc", time.Now().Add(time.Hour))

	gotID, gotNonce, err := parseResetToken(key, token)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
	require.Equal(t, "nonce-abc", gotNonce)
}

func TestResetTokenTamperDetected(t *testing.T) {
	key := []byte("test-secret-key-32-bytes-long!!!")
	token := makeResetToken(key, uuid.New(), "nonce-abc", time.Now().Add(time.Hour))

	// Flip a character in the payload half.
	body, sig, _ := strings.Cut(token, ".")
	mutated := body[:len(body)-1]
	if strings.HasSuffix(body, "A") {
		mutated += "B"
	} else {
		mutated += "A"
	}

	_, _, err := parseResetToken(key, mutated+"."+sig)
	require.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestResetTokenWrongKey(t *testing.T) {
	token := makeResetToken([]byte("key-one-key-one-key-one-key-one!"), uuid.New(), "n", time.Now().Add(time.Hour))
	_, _, err := parseResetToken([]byte("key-two-key-two-key-two-key-two!"), token)
	require.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestResetTokenExpired(t *testing.T) {
	key := []byte("test-secret-key-32-bytes-long!!!")
	token := makeResetToken(key, uuid.New(), "n", time.Now().Add(-time.Minute))
	_, _, err := parseResetToken(key, token)
	require.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestResetTokenMalformed(t *testing.T) {
	key := []byte("test-secret-key-32-bytes-long!!!")
	for _, tok := range []string{"", "nodot", "a.b.c", "!!!.???"} {
		_, _, err := parseResetToken(key, tok)
		require.Error(t, err, "token %q should be rejected", tok)
	}
}

func TestForgotPasswordSendsLink(t *testing.T) {
	svc, users, _, mailer, _ := newTestResetService(t)
	seedActiveUser(t, users, "ada@example.com", "oldpass1")

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.1"))
	require.Contains(t, mailer.resetURLs["ada@example.com"], "token=")
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, _, mailer, _ := newTestResetService(t)

	err := svc.ForgotPassword(context.Background(), "ghost@example.com", "10.0.0.1")
	require.ErrorIs(t, err, utils.ErrNotFound)
	require.Empty(t, mailer.resetURLs)
}

func TestForgotPasswordRateLimited(t *testing.T) {
	svc, users, _, _, _ := newTestResetService(t)
	seedActiveUser(t, users, "ada@example.com", "oldpass1")

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.1"))
	}

	err := svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.1")
	require.Error(t, err)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 429, appErr.StatusCode)

	// A different address is not affected.
	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.2"))
}

func TestResetPasswordEndToEnd(t *testing.T) {
	svc, users, _, mailer, sessions := newTestResetService(t)
	user := seedActiveUser(t, users, "ada@example.com", "oldpass1")

	// Open session that must be revoked by the reset.
	require.NoError(t, sessions.Create(context.Background(), &models.RefreshToken{
		ID: uuid.New(), UserID: user.ID, Token: "session-token", ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.1"))
	token := extractToken(t, mailer.resetURLs["ada@example.com"])

	require.NoError(t, svc.ResetPassword(context.Background(), token, "newpass99"))

	stored, _ := users.GetByID(context.Background(), user.ID)
	require.True(t, utils.CheckPasswordHash("newpass99", stored.PasswordHash))
	require.False(t, utils.CheckPasswordHash("oldpass1", stored.PasswordHash))
	require.Empty(t, sessions.tokens)

	// The nonce is single use.
	err := svc.ResetPassword(context.Background(), token, "anotherpass1")
	require.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestResetPasswordRejectsWeakPassword(t *testing.T) {
	svc, users, _, mailer, _ := newTestResetService(t)
	seedActiveUser(t, users, "ada@example.com", "oldpass1")

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com", "10.0.0.1"))
	token := extractToken(t, mailer.resetURLs["ada@example.com"])

	err := svc.ResetPassword(context.Background(), token, "short")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.StatusCode)
}

func TestResetPasswordGarbageToken(t *testing.T) {
	svc, _, _, _, _ := newTestResetService(t)
	err := svc.ResetPassword(context.Background(), "not-a-real-token", "newpass99")
	require.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
