package config

const (
	defaultTelegramAPIBaseURL = "https://api.telegram.org"
	defaultWebhookBind        = "127.0.0.1:8337"

	defaultCatalogBaseURL        = "https://api.poiskkino.dev/v1.4"
	defaultCatalogRequestTimeout = 25

	defaultMirrorRequestTimeout = 20

	defaultLogDir   = "~/.local/share/kinolink/logs"
	defaultLockFile = "~/.local/state/kinolink/kinolinkd.lock"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with every default value. Tokens and the
// webhook secret have no defaults and must come from the file or environment.
func Default() Config {
	return Config{
		Telegram: Telegram{
			APIBaseURL:  defaultTelegramAPIBaseURL,
			WebhookBind: defaultWebhookBind,
		},
		Catalog: Catalog{
			BaseURL:        defaultCatalogBaseURL,
			RequestTimeout: defaultCatalogRequestTimeout,
		},
		Mirror: Mirror{
			RequestTimeout: defaultMirrorRequestTimeout,
		},
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockFile: defaultLockFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
