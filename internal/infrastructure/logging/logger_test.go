package logging

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rfworks/attctl/internal/infrastructure/config"
)

func TestNew_JSONFormat(t *testing.T) {
	cfg := config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}

	logger := New(cfg, "1.0.0")

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_TextFormat(t *testing.T) {
	cfg := config.LoggingConfig{
		Level:  "debug",
		Format: "text",
		Output: "stderr",
	}

	logger := New(cfg, "1.0.0")

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{
			name:     "debug level",
			input:    "debug",
			expected: slog.LevelDebug,
		},
		{
			name:     "info level",
			input:    "info",
			expected: slog.LevelInfo,
		},
		{
			name:     "warn level",
			input:    "warn",
			expected: slog.LevelWarn,
		},
		{
			name:     "warning level",
			input:    "warning",
			expected: slog.LevelWarn,
		},
		{
			name:     "error level",
			input:    "error",
			expected: slog.LevelError,
		},
		{
			name:     "unknown defaults to info",
			input:    "unknown",
			expected: slog.LevelInfo,
		},
		{
			name:     "empty defaults to info",
			input:    "",
			expected: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLevel(tt.input)
			if got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOutputWriter(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.LoggingConfig
		expect func(t *testing.T, got any)
	}{
		{
			name: "stdout",
			cfg:  config.LoggingConfig{Output: "stdout"},
			expect: func(t *testing.T, got any) {
				if got != os.Stdout {
					t.Errorf("outputWriter() = %v, want os.Stdout", got)
				}
			},
		},
		{
			name: "stderr",
			cfg:  config.LoggingConfig{Output: "stderr"},
			expect: func(t *testing.T, got any) {
				if got != os.Stderr {
					t.Errorf("outputWriter() = %v, want os.Stderr", got)
				}
			},
		},
		{
			name: "unknown falls back to stderr",
			cfg:  config.LoggingConfig{Output: "bogus"},
			expect: func(t *testing.T, got any) {
				if got != os.Stderr {
					t.Errorf("outputWriter() = %v, want os.Stderr", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect(t, outputWriter(tt.cfg))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	cfg := config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "file",
		File: config.FileLoggingConfig{
			Path:    t.TempDir() + "/attctl.log",
			MaxSize: 1,
		},
	}

	logger := New(cfg, "1.0.0")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Writing must not panic and must create the file lazily.
	logger.Info("rotation smoke test")
	if _, err := os.Stat(cfg.File.Path); err != nil {
		t.Errorf("expected log file at %s: %v", cfg.File.Path, err)
	}
}

func TestWith(t *testing.T) {
	logger := Default()

	child := logger.With("component", "transport")
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == logger {
		t.Error("With() should return a new logger instance")
	}
}
