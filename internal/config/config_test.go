package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kinolink/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearSecretEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("KINOPOISK_DEV_TOKEN", "")
	t.Setenv("WEBHOOK_SECRET", "")
}

const validConfig = `
[telegram]
bot_token = "123:abc"
webhook_secret = "topsecret"

[catalog]
api_key = "kp-key"
`

func TestLoadValid(t *testing.T) {
	clearSecretEnv(t)
	path := writeConfig(t, validConfig)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved = (%q, %v), want (%q, true)", resolved, exists, path)
	}
	if cfg.Telegram.BotToken != "123:abc" || cfg.Telegram.WebhookSecret != "topsecret" {
		t.Errorf("unexpected telegram config: %#v", cfg.Telegram)
	}
	if cfg.Catalog.BaseURL != "https://api.poiskkino.dev/v1.4" {
		t.Errorf("default catalog base url missing: %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.RequestTimeout != 25 || cfg.Mirror.RequestTimeout != 20 {
		t.Errorf("unexpected timeouts: %d, %d", cfg.Catalog.RequestTimeout, cfg.Mirror.RequestTimeout)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %#v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) || !filepath.IsAbs(cfg.Paths.LockFile) {
		t.Errorf("paths not expanded: %#v", cfg.Paths)
	}
}

func TestLoadMissingCatalogKey(t *testing.T) {
	clearSecretEnv(t)
	path := writeConfig(t, "[telegram]\n")

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !config.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "api_key") {
		t.Errorf("error %q does not mention api_key", err)
	}
}

func TestValidateTelegram(t *testing.T) {
	clearSecretEnv(t)
	path := writeConfig(t, "[catalog]\napi_key = \"kp-key\"\n")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	err = cfg.ValidateTelegram()
	if err == nil {
		t.Fatal("expected telegram validation error")
	}
	for _, want := range []string{"bot_token", "webhook_secret"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}

	cfg.Telegram.BotToken = "123:abc"
	cfg.Telegram.WebhookSecret = "topsecret"
	if err := cfg.ValidateTelegram(); err != nil {
		t.Fatalf("ValidateTelegram returned error: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "999:env")
	t.Setenv("KINOPOISK_DEV_TOKEN", "env-key")
	t.Setenv("WEBHOOK_SECRET", "env-secret")
	path := writeConfig(t, validConfig)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Telegram.BotToken != "999:env" {
		t.Errorf("BotToken = %q, want env override", cfg.Telegram.BotToken)
	}
	if cfg.Catalog.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env override", cfg.Catalog.APIKey)
	}
	if cfg.Telegram.WebhookSecret != "env-secret" {
		t.Errorf("WebhookSecret = %q, want env override", cfg.Telegram.WebhookSecret)
	}
}

func TestLoadRejectsBadBind(t *testing.T) {
	clearSecretEnv(t)
	path := writeConfig(t, `
[telegram]
bot_token = "123:abc"
webhook_secret = "topsecret"
webhook_bind = "no-port"

[catalog]
api_key = "kp-key"
`)
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "webhook_bind") {
		t.Fatalf("expected webhook_bind error, got %v", err)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	clearSecretEnv(t)
	path := writeConfig(t, validConfig+`
[logging]
format = "yaml"
level = "loud"
`)

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "logging.format") || !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error %q does not mention logging problems", err)
	}
}

func TestLoadMissingFileUsesDefaultsAndFailsValidation(t *testing.T) {
	clearSecretEnv(t)
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, resolved, exists, err := config.Load(path)
	if exists {
		t.Errorf("exists = true for missing file %q", resolved)
	}
	if err == nil {
		t.Fatal("expected validation error without secrets")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("KINOPOISK_DEV_TOKEN", "kp-key")
	t.Setenv("WEBHOOK_SECRET", "topsecret")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Error("sample file not detected")
	}
	if cfg.Telegram.WebhookBind != "127.0.0.1:8337" {
		t.Errorf("unexpected bind from sample: %q", cfg.Telegram.WebhookBind)
	}
}
