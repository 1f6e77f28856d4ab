package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://soniaamorim.com/")
	t.Setenv("RATE_LIMIT_CONTACT_THRESHOLD", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://soniaamorim.com", cfg.FrontendURL)
	assert.Equal(t, 5, cfg.RateLimitContactThreshold)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, []string{"https://*.supabase.co"}, cfg.ImageHosts)
}

func TestLoadConfigImageHosts(t *testing.T) {
	t.Setenv("IMAGE_HOSTS", "https://abc.supabase.co/, https://cdn.soniaamorim.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://abc.supabase.co", "https://cdn.soniaamorim.com"}, cfg.ImageHosts)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://a.com/ ,, https://b.com")
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, getEnvList("ALLOWED_ORIGINS"))
	assert.Nil(t, getEnvList("ALLOWED_ORIGINS_UNSET"))
}
