// Package logger wires the process-wide slog logger for the inventory
// service. Handlers pick it up through LoggerWrapper or the request
// context helpers.
package logger

import (
	"log/slog"
	"os"
)

const serviceName = "asset-inventory"

var defaultLogger *slog.Logger

// Init configures the default logger for the given environment:
// JSON at info level in production, text at debug level otherwise.
// Every record carries the service name.
func Init(env string) {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	defaultLogger = slog.New(handler).With("service", serviceName)
	slog.SetDefault(defaultLogger)
}

// LoggerWrapper returns the configured logger, initializing a
// development one when Init has not run, so callers never get nil.
func LoggerWrapper() *slog.Logger {
	if defaultLogger == nil {
		Init("development")
	}
	return defaultLogger
}
