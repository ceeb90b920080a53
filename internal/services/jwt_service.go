package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
)

const TokenIssuer = "PropertyHive"

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateAccessToken(ctx context.Context, subjectID uuid.UUID, clientIP string, tokenExpiry time.Duration) (string, error)
	GenerateRefreshToken(ctx context.Context, subjectID uuid.UUID, clientIP string, refreshExpiry time.Duration) (*models.RefreshToken, error)

	// RefreshToken rotates a refresh token: the presented token is removed
	// and a fresh access/refresh pair is issued.
	RefreshToken(ctx context.Context, refreshTokenString, clientIP string, tokenExpiry, refreshExpiry time.Duration) (string, string, error)

	Logout(ctx context.Context, refreshTokenString string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	secretKey []byte
	tokenRepo repositories.RefreshTokenRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.RefreshTokenRepository) JWTService {
	return &jwtService{
		secretKey: cfg.SecretKey,
		tokenRepo: tokenRepo,
	}
}

func (j *jwtService) GenerateAccessToken(
	ctx context.Context,
	subjectID uuid.UUID,
	clientIP string,
	tokenExpiry time.Duration,
) (string, error) {
	claims := jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": subjectID.String(),
		"exp": time.Now().Add(tokenExpiry).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	if clientIP != "" {
		claims["ip"] = clientIP
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *jwtService) GenerateRefreshToken(
	ctx context.Context,
	subjectID uuid.UUID,
	clientIP string,
	refreshExpiry time.Duration,
) (*models.RefreshToken, error) {
	if j.tokenRepo == nil {
		return nil, errors.New("jwtService has nil tokenRepo")
	}

	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    subjectID,
		Token:     generateSecureToken(48),
		IPAddress: clientIP,
		ExpiresAt: time.Now().Add(refreshExpiry),
		CreatedAt: time.Now(),
	}

	if err := j.tokenRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (j *jwtService) RefreshToken(
	ctx context.Context,
	refreshTokenString, clientIP string,
	tokenExpiry, refreshExpiry time.Duration,
) (string, string, error) {
	stored, err := j.tokenRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		return "", "", err
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return "", "", errors.New("invalid or expired refresh token")
	}

	// Rotation: the presented token is single-use.
	if err := j.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return "", "", err
	}

	accessToken, err := j.GenerateAccessToken(ctx, stored.UserID, clientIP, tokenExpiry)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := j.GenerateRefreshToken(ctx, stored.UserID, clientIP, refreshExpiry)
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefresh.Token, nil
}

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	stored, err := j.tokenRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}
	return j.tokenRepo.Revoke(ctx, stored.ID)
}

func generateSecureToken(byteLen int) string {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
