package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "freshncook")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "freshncook")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "freshncook", cfg.DBUser)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "AC123", cfg.TwilioAccountSID)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_HOST", "DB_HOST", "DB_PORT", "DB_NAME", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "freshncook", cfg.DBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadProdSecretsOverlay(t *testing.T) {
	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "jwt_secret"), []byte("prod-jwt\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("prod-db-pass"), 0o600))

	t.Setenv("ENV", "production")
	t.Setenv("SECRETS_DIR", secretsDir)
	t.Setenv("JWT_SECRET", "env-jwt")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// File-based secrets win over plain env in production.
	assert.Equal(t, "prod-jwt", cfg.JWTSecret)
	assert.Equal(t, "prod-db-pass", cfg.DBPassword)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		ServerPort: "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBName:     "freshncook",
		RedisHost:  "localhost",
		RedisPort:  "6379",
	}
	assert.NoError(t, ValidateConfig(valid))

	missingDB := *valid
	missingDB.DBHost = ""
	assert.Error(t, ValidateConfig(&missingDB))

	missingRedis := *valid
	missingRedis.RedisHost = ""
	assert.Error(t, ValidateConfig(&missingRedis))

	redisURLOnly := *valid
	redisURLOnly.RedisHost = ""
	redisURLOnly.RedisURL = "redis://localhost:6379"
	assert.NoError(t, ValidateConfig(&redisURLOnly))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	os.Unsetenv("CI")

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())
}
