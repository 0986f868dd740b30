package config

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRequired(t *testing.T) {
	t.Run("Reports missing key", func(t *testing.T) {
		statuses, ok := CheckRequired(func(string) (string, bool) { return "", false })
		assert.False(t, ok)
		require.Len(t, statuses, 1)
		assert.Equal(t, EnvDeepSeekAPIKey, statuses[0].Name)
		assert.False(t, statuses[0].Present)
		assert.Empty(t, statuses[0].Preview)
	})

	t.Run("Empty value counts as missing", func(t *testing.T) {
		_, ok := CheckRequired(func(string) (string, bool) { return "", true })
		assert.False(t, ok)
	})

	t.Run("Masks long secrets", func(t *testing.T) {
		statuses, ok := CheckRequired(func(string) (string, bool) { return "sk-1234567890abcdef", true })
		assert.True(t, ok)
		assert.Equal(t, "sk-1234567...", statuses[0].Preview)
	})

	t.Run("Masks by character, not byte", func(t *testing.T) {
		statuses, _ := CheckRequired(func(string) (string, bool) { return "密钥密钥密钥密钥密钥密钥", true })
		assert.Equal(t, "密钥密钥密钥密钥密钥...", statuses[0].Preview)
		assert.True(t, utf8.ValidString(statuses[0].Preview))
	})

	t.Run("Short values are shown whole", func(t *testing.T) {
		statuses, _ := CheckRequired(func(string) (string, bool) { return "short", true })
		assert.Equal(t, "short", statuses[0].Preview)
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CHAT_TEMPERATURE", "not-a-number")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 0.7, cfg.ChatTemperature)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.DeepSeekBaseURL)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeekModel)
}

func TestDurations(t *testing.T) {
	cfg := &Config{RateLimitWindowSeconds: 90, SessionTTLHours: 2}
	assert.Equal(t, 90*time.Second, cfg.RateLimitWindow())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL())
}
