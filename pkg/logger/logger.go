// Package logger provides the structured, levelled logger used across tably,
// built on log/slog.
//
// In production (APP_ENV=production) log lines are JSON for aggregators; in
// development they are human-readable text. All packages log through the
// package-level helpers:
//
//	logger.Warn("order: submit failed", "table", 3, "error", err)
package logger

import (
	"log/slog"
	"os"

	"github.com/chriskampolis/tably/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
