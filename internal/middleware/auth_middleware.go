package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type contextKey string

const ContextKeyUserID = contextKey("userID")

// AuthMiddleware protects endpoints that require a logged-in user. The
// JWT is read from Authorization: Bearer ... and its subject lands in the
// request context under ContextKeyUserID.
func AuthMiddleware(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := authenticate(w, r, secretKey)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuthMiddleware additionally requires the authenticated account to
// be staff.
func AdminAuthMiddleware(secretKey []byte, users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := authenticate(w, r, secretKey)
			if !ok {
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err,
				)
				return
			}
			if user == nil || !user.IsStaff {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeUnauthorized, "Insufficient permissions", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware sets ContextKeyUserID when a valid token is
// presented but lets anonymous requests through untouched.
func OptionalAuthMiddleware(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			tok, vErr := ValidateAccessToken(tokenStr, secretKey)
			if vErr != nil || !tok.Valid {
				next.ServeHTTP(w, r)
				return
			}

			if userID, ok := subjectID(tok); ok {
				r = r.WithContext(context.WithValue(r.Context(), ContextKeyUserID, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, secretKey []byte) (uuid.UUID, bool) {
	tokenStr, err := extractAccessToken(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
		)
		return uuid.Nil, false
	}

	tok, vErr := ValidateAccessToken(tokenStr, secretKey)
	if vErr != nil || !tok.Valid {
		if errors.Is(vErr, jwt.ErrTokenExpired) {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
			)
			return uuid.Nil, false
		}
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
		)
		return uuid.Nil, false
	}

	userID, ok := subjectID(tok)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing subject", nil,
		)
		return uuid.Nil, false
	}

	return userID, true
}

func subjectID(tok *jwt.Token) (uuid.UUID, bool) {
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
