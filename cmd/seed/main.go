package main

import (
	"context"
	"os"

	"github.com/yachurik/Income/internal/config"
	"github.com/yachurik/Income/internal/log"
	"github.com/yachurik/Income/internal/repository"
)

// Утилита развёртывания: сбрасывает таблицы и заливает справочник категорий.
// Запускается отдельно от бота и только руками.
func main() {
	cfg := config.Load()
	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel)}).WithComponent("seed")

	repo, err := repository.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		logger.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.SeedDefaults(context.Background()); err != nil {
		logger.Error("seed defaults", "err", err)
		os.Exit(1)
	}
	logger.Info("default categories seeded", "db", cfg.DBPath)
}
