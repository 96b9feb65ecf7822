package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt 密碼上限 72 bytes
	_, err := HashPassword(strings.Repeat("a", 100))
	require.Error(t, err)
}
