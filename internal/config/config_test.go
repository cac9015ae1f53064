package config

import (
	"testing"
	"time"

	"bazar-dor-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT",
		"JWT_SECRET", "TOKEN_TTL_HOURS", "DEFAULT_LANGUAGE", "TIMEZONE",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "SEED_SAMPLE_PRODUCTS",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHANNEL_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Contains(t, cfg.DatabaseURL, "dbname=bazar_dor")
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, model.LangBN, cfg.DefaultLanguage)
	assert.NotNil(t, cfg.Location)
	assert.True(t, cfg.SeedSampleProducts)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/x")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("DEFAULT_LANGUAGE", "EN")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_SAMPLE_PRODUCTS", "false")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHANNEL_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://u:p@db/x", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, model.LangEN, cfg.DefaultLanguage)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.SeedSampleProducts)
	assert.Equal(t, int64(-100123), cfg.TelegramChannelID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"DEFAULT_LANGUAGE":    "fr",
		"TOKEN_TTL_HOURS":     "soon",
		"TELEGRAM_CHANNEL_ID": "channel",
		"TIMEZONE":            "Mars/Base",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
