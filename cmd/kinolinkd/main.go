// Command kinolinkd runs the Telegram webhook daemon: it receives bot
// updates, resolves title queries against the catalog, and replies with
// mirror watch links and franchise lists.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"

	"kinolink/internal/config"
	"kinolink/internal/logging"
	"kinolink/internal/webhook"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.ValidateTelegram(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	lock := flock.New(cfg.Paths.LockFile)
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("acquire lock: %v", err)
	}
	if !locked {
		log.Fatalf("another kinolinkd instance holds %s", cfg.Paths.LockFile)
	}
	defer lock.Unlock() //nolint:errcheck

	logger, closeLogs, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer closeLogs()

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		logger.Error("build handler", logging.Error(err))
		return
	}

	server, err := webhook.New(cfg.Telegram.WebhookBind, cfg.Telegram.WebhookSecret, handler, logger)
	if err != nil {
		logger.Error("create webhook server", logging.Error(err))
		return
	}
	if err := server.Start(ctx); err != nil {
		logger.Error("start webhook server", logging.Error(err))
		return
	}
	defer server.Stop()

	logger.Info("kinolinkd started", logging.String("bind", cfg.Telegram.WebhookBind))
	<-ctx.Done()
	logger.Info("kinolinkd shutting down")
}
