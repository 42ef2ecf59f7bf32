// Package config loads, validates, and normalizes kinolink configuration.
//
// Configuration comes from a TOML file (default ~/.config/kinolink/config.toml,
// with ./kinolink.toml as a project-local fallback). Secrets can be supplied
// via the BOT_TOKEN, KINOPOISK_DEV_TOKEN, and WEBHOOK_SECRET environment
// variables, which take precedence over file values.
package config
