package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestStringToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
		zap  zapcore.Level
	}{
		{"debug", slog.LevelDebug, zapcore.DebugLevel},
		{"INFO", slog.LevelInfo, zapcore.InfoLevel},
		{"warning", slog.LevelWarn, zapcore.WarnLevel},
		{"warn", slog.LevelWarn, zapcore.WarnLevel},
		{"error", slog.LevelError, zapcore.ErrorLevel},
		{"verbose", slog.LevelInfo, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := stringToLogLevel(tt.in); got != tt.want {
				t.Errorf("stringToLogLevel(%q) = %v, want: %v", tt.in, got, tt.want)
			}

			if got := stringToZapLevel(tt.in); got != tt.zap {
				t.Errorf("stringToZapLevel(%q) = %v, want: %v", tt.in, got, tt.zap)
			}
		})
	}
}

func TestNewZapLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewZapLogger("production", "warn")
	if err != nil {
		t.Fatalf("NewZapLogger() = %v, want: %v", err, nil)
	}

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level enabled, want: disabled")
	}

	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error level disabled, want: enabled")
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	logger := SetupLogger("user-directory", "production", "info", &buf)
	logger.Debug("hidden")
	slog.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output %q contains a debug record", out)
	}

	if !strings.Contains(out, `"service":"user-directory"`) || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("output %q, want a JSON record tagged with the service name", out)
	}
}
