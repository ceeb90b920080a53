package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("strongpass1")
	require.NoError(t, err)
	require.NotEqual(t, "strongpass1", hash)

	require.True(t, CheckPasswordHash("strongpass1", hash))
	require.False(t, CheckPasswordHash("wrongpass1", hash))
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		problems int
	}{
		{"valid", "abcdef1", 0},
		{"too short", "abc1", 1},
		{"no digit", "abcdefg", 1},
		{"no lowercase", "ABCDEFG1", 1},
		{"all failures", "ABC", 3},
		{"empty", "", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, ValidatePasswordPolicy(tc.password), tc.problems)
		})
	}
}
