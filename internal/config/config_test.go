package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", conf.Host)
	assert.Equal(t, "8000", conf.Port)
	assert.Equal(t, "/health", conf.HealthEndpoint)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "json", conf.LogFormat)
	assert.Equal(t, "hotel_data.json", conf.HotelDataPath)
	assert.Equal(t, "storage", conf.IndexStoragePath)
	assert.Equal(t, "text-embedding-004", conf.EmbeddingModel)
	assert.Equal(t, 3, conf.TopKResults)
	assert.InDelta(t, 0.3, conf.SimilarityThreshold, 0.001)
	assert.Equal(t, 10*time.Minute, conf.QueryCacheTTL)
	assert.Equal(t, 60, conf.RateLimitPerMin)

	// Optional integrations stay off until configured.
	assert.Empty(t, conf.GeminiAPIKey)
	assert.Empty(t, conf.RedisAddr)
	assert.Empty(t, conf.ElevenLabsAPIKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9100")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", conf.Port)
	assert.Equal(t, "console", conf.LogFormat)
	assert.Equal(t, 5, conf.RateLimitPerMin)
}
