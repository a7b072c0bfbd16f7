package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds bcrypt settings and the hash of the shared admin password
// that guards the HTTP API.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
	AdminHash  string
}

// NewPasswordConfig reads SITEGEN_BCRYPT_COST (default: 12), SITEGEN_PASSWORD_PEPPER and the
// admin password. SITEGEN_ADMIN_PASSWORD_HASH takes a bcrypt hash; otherwise
// SITEGEN_ADMIN_PASSWORD is hashed at startup.
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv(EnvPrefix + "_BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s_BCRYPT_COST: %v", EnvPrefix, err)
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv(EnvPrefix + "_PASSWORD_PEPPER"),
		AdminHash:  os.Getenv(EnvPrefix + "_ADMIN_PASSWORD_HASH"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	if cfg.AdminHash == "" {
		plain := os.Getenv(EnvPrefix + "_ADMIN_PASSWORD")
		if plain == "" {
			return nil, fmt.Errorf("%s_ADMIN_PASSWORD or %s_ADMIN_PASSWORD_HASH is required", EnvPrefix, EnvPrefix)
		}
		if cfg.AdminHash, err = cfg.HashPassword(plain); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	return nil
}

func (c *PasswordConfig) pepper(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.pepper(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.pepper(pw)) == nil
}

// VerifyAdmin checks pw against the admin hash
func (c *PasswordConfig) VerifyAdmin(pw string) bool {
	if c.AdminHash == "" {
		return false
	}
	return c.VerifyPassword(pw, c.AdminHash)
}
