// Package logging configures the process loggers: slog for lifecycle
// messages and zap for the RPC layer.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs the default slog logger tagged with the service name.
// Production logs are JSON; debug logs carry the source location.
func SetupLogger(appName, appEnv, logLevel string, out io.Writer) *slog.Logger {
	level := stringToLogLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(slog.String("service", appName))
	slog.SetDefault(logger)
	return logger
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
