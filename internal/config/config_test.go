package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/matchscout/internal/ai"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "PORT", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "ANALYSIS_TIMEOUT",
		"SESSION_TTL", "CORS_ORIGINS", "SMTP_SERVER", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
		"TO_EMAIL", "FROM_EMAIL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ai.DefaultModel, cfg.GeminiModel)
	assert.Equal(t, 90*time.Second, cfg.AnalysisTimeout)
	assert.False(t, cfg.Email.Enabled)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("ANALYSIS_TIMEOUT", "45s")
	t.Setenv("SESSION_TTL", "bogus")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, 45*time.Second, cfg.AnalysisTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToLegacyKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.GeminiAPIKey)
}

func TestEmailEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASS", "pw")
	t.Setenv("TO_EMAIL", "me@example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "bot@example.com", cfg.Email.FromEmail)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
}
