package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBPath        string
	LogLevel      string
}

// Load читает настройки из окружения; .env не обязателен.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getEnv("SQLITE_DB_PATH", "./data/income.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
