package config

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setPasswordEnv(t *testing.T, cost, pepper, plain, hash string) {
	t.Helper()
	t.Setenv("SITEGEN_BCRYPT_COST", cost)
	t.Setenv("SITEGEN_PASSWORD_PEPPER", pepper)
	t.Setenv("SITEGEN_ADMIN_PASSWORD", plain)
	t.Setenv("SITEGEN_ADMIN_PASSWORD_HASH", hash)
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  string
	}{
		{"default cost", "", 12, ""},
		{"minimum cost", "4", 4, ""},
		{"maximum cost", "14", 14, ""},
		{"cost too low", "3", 0, "out of range"},
		{"cost too high", "15", 0, "out of range"},
		{"invalid cost", "invalid", 0, "invalid SITEGEN_BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a precomputed hash keeps high costs from slowing the test
			setPasswordEnv(t, tt.cost, "", "", "$2a$04$placeholderplaceholderpl")

			cfg, err := NewPasswordConfig()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestNewPasswordConfig_HashesPlainAdminPassword(t *testing.T) {
	setPasswordEnv(t, "4", "pepper", "open sesame", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cfg.AdminHash, "$2a$04$"))
	assert.True(t, cfg.VerifyAdmin("open sesame"))
	assert.False(t, cfg.VerifyAdmin("open sesame!"))
}

func TestNewPasswordConfig_UsesProvidedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	setPasswordEnv(t, "4", "", "ignored", string(hash))

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	assert.Equal(t, string(hash), cfg.AdminHash)
	assert.True(t, cfg.VerifyAdmin("hunter2"))
	assert.False(t, cfg.VerifyAdmin("ignored"))
}

func TestNewPasswordConfig_MissingAdminPassword(t *testing.T) {
	setPasswordEnv(t, "4", "", "", "")

	_, err := NewPasswordConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SITEGEN_ADMIN_PASSWORD")
}

func TestPasswordConfig_VerifyPassword_WithPepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "pepper-1"}
	hash, err := peppered.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("correct horse", hash))
	assert.False(t, peppered.VerifyPassword("wrong horse", hash))

	rotated := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "pepper-2"}
	assert.False(t, rotated.VerifyPassword("correct horse", hash), "a different pepper must not verify")

	plain := &PasswordConfig{BcryptCost: bcrypt.MinCost}
	assert.False(t, plain.VerifyPassword("correct horse", hash))
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	first, err := cfg.HashPassword("same")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, cfg.VerifyPassword("same", first))
	assert.True(t, cfg.VerifyPassword("same", second))
}

func TestPasswordConfig_PasswordExceeding72Bytes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}

	_, err := cfg.HashPassword(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestPasswordConfig_VerifyAdmin_NoHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost}
	assert.False(t, cfg.VerifyAdmin(""))
}

func TestPasswordConfig_ConcurrentAccess(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: "p"}
	hash, err := cfg.HashPassword("shared")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, cfg.VerifyPassword("shared", hash))
		}()
	}
	wg.Wait()
}
