package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ValidationError aggregates every problem found in a config so users can fix
// them in one pass.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "invalid configuration"
	}
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks the settings every command needs: catalog access, the
// webhook bind format, and logging. Telegram secrets are checked separately
// by ValidateTelegram so catalog-only CLI commands can run without them.
func (c *Config) Validate() error {
	var problems []string

	if c.Catalog.APIKey == "" {
		problems = append(problems, "catalog.api_key is required (or set KINOPOISK_DEV_TOKEN)")
	}
	if !strings.HasPrefix(c.Catalog.BaseURL, "http://") && !strings.HasPrefix(c.Catalog.BaseURL, "https://") {
		problems = append(problems, fmt.Sprintf("catalog.base_url %q must be an http(s) URL", c.Catalog.BaseURL))
	}

	if _, _, err := net.SplitHostPort(c.Telegram.WebhookBind); err != nil {
		problems = append(problems, fmt.Sprintf("telegram.webhook_bind %q is not host:port", c.Telegram.WebhookBind))
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q must be debug, info, warn, or error", c.Logging.Level))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidateTelegram checks the settings only the webhook daemon needs.
func (c *Config) ValidateTelegram() error {
	var problems []string

	if c.Telegram.BotToken == "" {
		problems = append(problems, "telegram.bot_token is required (or set BOT_TOKEN)")
	}
	if c.Telegram.WebhookSecret == "" {
		problems = append(problems, "telegram.webhook_secret is required (or set WEBHOOK_SECRET)")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IsValidationError reports whether err is a configuration validation error.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
