package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "graceful_otter", false},
		{"valid with digits", "reader42", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", MaxUsernameLength+1), true},
		{"leading underscore", "_hidden", true},
		{"illegal characters", "no spaces here", true},
		{"illegal symbol", "user@home", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "quiet_fox", NormalizeUsername("  Quiet_Fox "))
}

func TestRandomUsernameIsValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := RandomUsername()
		require.NoError(t, ValidateUsername(name), "generated %q", name)
		assert.Contains(t, name, "_")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("anything", "not-a-hash")
	assert.Error(t, err)
}
