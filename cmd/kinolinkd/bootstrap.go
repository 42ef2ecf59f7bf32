package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"kinolink/internal/bot"
	"kinolink/internal/catalog"
	"kinolink/internal/config"
	"kinolink/internal/franchise"
	"kinolink/internal/logging"
	"kinolink/internal/resolve"
	"kinolink/internal/sslink"
	"kinolink/internal/telegram"
)

// newLogger writes to stdout and a daemon log file in the configured log
// directory.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	logPath := filepath.Join(cfg.Paths.LogDir, "kinolinkd.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: io.MultiWriter(os.Stdout, file),
	})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return logger, func() { _ = file.Close() }, nil
}

func buildHandler(cfg *config.Config, logger *slog.Logger) (*bot.Handler, error) {
	catalogHTTP := &http.Client{Timeout: time.Duration(cfg.Catalog.RequestTimeout) * time.Second}
	client, err := catalog.New(cfg.Catalog.APIKey, cfg.Catalog.BaseURL, catalog.WithHTTPClient(catalogHTTP))
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}

	sender, err := telegram.New(cfg.Telegram.BotToken, telegram.WithBaseURL(cfg.Telegram.APIBaseURL))
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	mirrorHTTP := &http.Client{Timeout: time.Duration(cfg.Mirror.RequestTimeout) * time.Second}
	links := sslink.NewResolver(sslink.WithHTTPClient(mirrorHTTP))

	return bot.New(bot.Deps{
		Searcher:  client,
		Resolver:  resolve.New(client, logger),
		Franchise: franchise.New(client, logger),
		Links:     links,
		Sender:    sender,
		Logger:    logger,
	})
}
