package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors the secret-bearing fields so tokens can stay out of
// the config file entirely.
type envOverrides struct {
	BotToken      string `env:"BOT_TOKEN"`
	CatalogAPIKey string `env:"KINOPOISK_DEV_TOKEN"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

func (c *Config) applyEnvOverrides() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment overrides: %w", err)
	}
	if v := strings.TrimSpace(overrides.BotToken); v != "" {
		c.Telegram.BotToken = v
	}
	if v := strings.TrimSpace(overrides.CatalogAPIKey); v != "" {
		c.Catalog.APIKey = v
	}
	if v := strings.TrimSpace(overrides.WebhookSecret); v != "" {
		c.Telegram.WebhookSecret = v
	}
	return nil
}

// normalize trims values, fills empty fields from defaults, and expands
// filesystem paths.
func (c *Config) normalize() error {
	defaults := Default()

	c.Telegram.BotToken = strings.TrimSpace(c.Telegram.BotToken)
	c.Telegram.WebhookSecret = strings.TrimSpace(c.Telegram.WebhookSecret)
	c.Telegram.WebhookBind = strings.TrimSpace(c.Telegram.WebhookBind)
	if c.Telegram.WebhookBind == "" {
		c.Telegram.WebhookBind = defaults.Telegram.WebhookBind
	}
	c.Telegram.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.Telegram.APIBaseURL), "/")
	if c.Telegram.APIBaseURL == "" {
		c.Telegram.APIBaseURL = defaults.Telegram.APIBaseURL
	}

	c.Catalog.APIKey = strings.TrimSpace(c.Catalog.APIKey)
	c.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(c.Catalog.BaseURL), "/")
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaults.Catalog.BaseURL
	}
	if c.Catalog.RequestTimeout <= 0 {
		c.Catalog.RequestTimeout = defaults.Catalog.RequestTimeout
	}

	if c.Mirror.RequestTimeout <= 0 {
		c.Mirror.RequestTimeout = defaults.Mirror.RequestTimeout
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	logDir := strings.TrimSpace(c.Paths.LogDir)
	if logDir == "" {
		logDir = defaults.Paths.LogDir
	}
	expanded, err := expandPath(logDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = expanded

	lockFile := strings.TrimSpace(c.Paths.LockFile)
	if lockFile == "" {
		lockFile = defaults.Paths.LockFile
	}
	expanded, err = expandPath(lockFile)
	if err != nil {
		return err
	}
	c.Paths.LockFile = expanded

	return nil
}
