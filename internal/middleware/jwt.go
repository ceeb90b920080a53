package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateAccessToken parses and verifies an HMAC-signed access token.
func ValidateAccessToken(tokenStr string, secretKey []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}
