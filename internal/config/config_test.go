package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.ServiceURL)
	assert.Equal(t, "local", cfg.HSData.Type)
	assert.Equal(t, "./data/hs_codes.json", cfg.HSData.LocalPath)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerHour)
	assert.Equal(t, 90, cfg.Cache.VerificationTTLDays)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HS_DATA_SOURCE", "s3")
	t.Setenv("HS_DATA_S3_BUCKET", "tariff-data")
	t.Setenv("HS_DATA_S3_KEY", "codes.json")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_HOUR", "250")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "s3", cfg.HSData.Type)
	assert.Equal(t, "tariff-data", cfg.HSData.S3Bucket)
	assert.Equal(t, 250, cfg.RateLimit.RequestsPerHour)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsUnknownDataSource(t *testing.T) {
	t.Setenv("HS_DATA_SOURCE", "ftp")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HS_DATA_SOURCE")
}

func TestValidateRejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS_PER_HOUR", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_REQUESTS_PER_HOUR")
}
