package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/yachurik/Income/internal/bot"
	"github.com/yachurik/Income/internal/config"
	"github.com/yachurik/Income/internal/dialog"
	"github.com/yachurik/Income/internal/log"
	"github.com/yachurik/Income/internal/repository"
	"github.com/yachurik/Income/internal/service"
)

func main() {
	cfg := config.Load()
	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel)})

	if cfg.TelegramToken == "" {
		logger.Error("TELEGRAM_TOKEN is not set")
		os.Exit(1)
	}

	repo, err := repository.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		logger.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	ledger := service.NewLedger(repo, repo)
	engine := dialog.NewEngine(ledger, logger)

	b, err := bot.NewBot(cfg.TelegramToken, ledger, engine, logger)
	if err != nil {
		logger.Error("init bot", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Start(ctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("bot stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bot stopped")
}
