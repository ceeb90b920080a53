package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPasswordHash compares a plaintext password with a stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordPolicy enforces the account password policy: at least 7
// characters, one lowercase letter and one digit. Returns per-field style
// messages suitable for a 400 validation response.
func ValidatePasswordPolicy(password string) []string {
	var problems []string
	if len(password) < 7 {
		problems = append(problems, "Password must be at least 7 characters long.")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		problems = append(problems, "Password must contain at least one lowercase letter.")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		problems = append(problems, "Password must contain at least one digit.")
	}
	return problems
}
