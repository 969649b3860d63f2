package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func loggerFromViper() *slog.Logger {
	return newLogger(os.Stderr,
		viper.GetString("log.level"),
		viper.GetString("log.format"),
		viper.GetBool("log.add_source"),
	)
}

func newLogger(w io.Writer, level string, format string, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: addSource,
	}
	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
