// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bazar-dor-api/internal/model"
)

// Config holds every knob of the API server.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	DefaultLanguage model.Language
	Location        *time.Location

	AdminEmail    string
	AdminPassword string

	SeedSampleProducts bool

	TelegramToken     string
	TelegramChannelID int64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment with defaults.
// Call godotenv.Load first if a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getenv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		TokenTTL:      24 * time.Hour,
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "bazar_dor"),
			getenv("DB_PORT", "5432"),
		)
	}

	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer, got %q", raw)
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	lang, ok := model.ParseLanguage(getenv("DEFAULT_LANGUAGE", string(model.LangBN)))
	if !ok {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE must be bn or en, got %q", os.Getenv("DEFAULT_LANGUAGE"))
	}
	cfg.DefaultLanguage = lang

	tz := getenv("TIMEZONE", "Asia/Dhaka")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		if tz != "Asia/Dhaka" {
			return nil, fmt.Errorf("unknown TIMEZONE %q: %w", tz, err)
		}
		// Fallback to UTC+6 if timezone data not available
		loc = time.FixedZone("BST", 6*60*60)
	}
	cfg.Location = loc

	seed := strings.ToLower(getenv("SEED_SAMPLE_PRODUCTS", "true"))
	cfg.SeedSampleProducts = seed == "1" || seed == "true" || seed == "yes"

	if raw := os.Getenv("TELEGRAM_CHANNEL_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHANNEL_ID is not a number: %w", err)
		}
		cfg.TelegramChannelID = id
	}

	return cfg, nil
}

// TelegramEnabled reports whether price announcements should be posted.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChannelID != 0
}
