package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "kH8s2Pq9vX4mN7rT1wZ5yB3cF6gJ0dLa"

func setRequiredEnv(t *testing.T) {
	t.Setenv(envMongoURI, "mongodb://localhost:27017")
	t.Setenv(envJWTSecret, testSecret)
	t.Setenv(envStripeSecretKey, "sk_test_abc")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "inventoryDb", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiryDuration)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 5, cfg.App.PageSize)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.CORSOrigins)
	assert.False(t, cfg.App.StrictMutations)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envEnvironment, EnvProduction)
	t.Setenv(envPort, "8080")
	t.Setenv(envJWTExpiry, "30m")
	t.Setenv(envPageSize, "10")
	t.Setenv(envCORSOrigins, "https://a.example.com, https://b.example.com")
	t.Setenv(envStrictMutations, "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ExpiryDuration)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORSOrigins)
	assert.True(t, cfg.App.StrictMutations)
}

func TestLoad_MissingMongoURI(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envMongoURI, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoad_MissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envJWTSecret, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_ACCESS_TOKEN")
}

func TestLoad_ShortSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envJWTSecret, "too-short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_LowEntropySecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envJWTSecret, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(envEnvironment, "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestHasMinimumEntropy(t *testing.T) {
	assert.True(t, hasMinimumEntropy(testSecret))
	assert.False(t, hasMinimumEntropy("abababababababababababababababab"))
	assert.False(t, hasMinimumEntropy("short"))
}

func TestGetDurationEnv_BareMinutes(t *testing.T) {
	t.Setenv("TEST_DURATION", "15")
	assert.Equal(t, 15*time.Minute, getDurationEnv("TEST_DURATION", time.Hour))

	t.Setenv("TEST_DURATION", "")
	assert.Equal(t, time.Hour, getDurationEnv("TEST_DURATION", time.Hour))
}
