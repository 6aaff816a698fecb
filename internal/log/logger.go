package log

import (
	"log/slog"
	"os"
	"strings"
)

// Logger — обёртка над slog с привязкой имени компонента.
type Logger struct {
	*slog.Logger
	component string
}

// Config задаёт уровень и обработчик логов.
type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

// New создаёт логгер; при пустом обработчике пишем текстом в stdout.
func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	return &Logger{Logger: slog.New(handler), component: "app"}
}

// WithComponent возвращает логгер с меткой компонента.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// With возвращает логгер с дополнительными атрибутами.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// ParseLevel разбирает уровень из конфигурации; неизвестное значение — info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
