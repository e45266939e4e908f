package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		JWTSecret:      "test-secret",
		Port:           "8080",
		DBHost:         "localhost",
		DBPort:         "5432",
		DBUser:         "user",
		DBPassword:     "password",
		DBName:         "ripple",
		DBSSLMode:      "disable",
		RedisURL:       "localhost:6379",
		AllowedOrigins: "http://localhost:3000",
		Env:            "test",
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := baseConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := baseConfig()
	cfg.JWTSecret = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_ProductionRejectsDefaultSecret(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "your-secret-key-change-in-production"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default value")
}

func TestValidate_ProductionRejectsShortSecret(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "short"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestValidate_ProductionRejectsWeakDBPassword(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "a-sufficiently-long-production-secret-value"
	cfg.DBPassword = "password"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
