package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cattery/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "zhipu", cfg.AI.Provider)
	assert.Equal(t, "glm-4.7-flash", cfg.AI.Zhipu.Model)
	assert.Equal(t, "qwen-turbo-latest", cfg.AI.Bailian.Model)
	assert.Equal(t, 1024, cfg.AI.Bailian.MaxTokens)
	assert.InDelta(t, 0.3, cfg.AI.Zhipu.Temperature, 1e-9)
	assert.True(t, cfg.AI.ValidateVocabulary)
	assert.Equal(t, 256, cfg.Drafts.MaxOpen)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATTERY_AI_PROVIDER", "bailian")
	t.Setenv("CATTERY_AI_BAILIAN_API_KEY", "sk-bailian")
	t.Setenv("CATTERY_AI_TIMEOUT_SECS", "5")
	t.Setenv("CATTERY_CORS_ALLOWED_ORIGINS", "https://admin.cattery.test, ,https://cattery.test")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "bailian", cfg.AI.Provider)
	assert.Equal(t, "sk-bailian", cfg.AI.Bailian.APIKey)
	assert.Empty(t, cfg.AI.Zhipu.APIKey)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout())
	assert.Equal(t, []string{"https://admin.cattery.test", "https://cattery.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("CATTERY_SERVER_PORT", "")
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestAIConfig_TimeoutAndLocation(t *testing.T) {
	assert.Equal(t, 30*time.Second, (&config.AIConfig{}).Timeout())
	assert.Equal(t, time.UTC, (&config.AIConfig{}).Location())
	assert.Equal(t, time.UTC, (&config.AIConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "Asia/Shanghai", (&config.AIConfig{Timezone: "Asia/Shanghai"}).Location().String())
}
