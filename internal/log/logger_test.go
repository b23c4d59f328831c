package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopipy/posctl/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:   "debug config",
			config: DebugConfig(),
		},
		{
			name: "custom config json",
			config: Config{
				Level:  LevelDebug,
				Format: FormatJSON,
				Output: &bytes.Buffer{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.config)
			if logger == nil {
				t.Fatal("expected logger, got nil")
			}
			if logger.slog == nil {
				t.Fatal("expected slog logger, got nil")
			}
			if logger.config.Level != tt.config.Level {
				t.Errorf("expected level %v, got %v", tt.config.Level, logger.config.Level)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("info message should have been filtered, got: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn message missing, got: %s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("hello", "merchant", "m1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", entry["msg"])
	}
	if entry["merchant"] != "m1" {
		t.Errorf("merchant = %v, want m1", entry["merchant"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	err := errors.NewAuthFailedError("Invalid credentials")
	logger.WithError(err).Error("login failed")

	out := buf.String()
	if !strings.Contains(out, string(errors.ErrCodeAuthFailed)) {
		t.Errorf("output should contain the error code, got: %s", out)
	}
	if !strings.Contains(out, "Invalid credentials") {
		t.Errorf("output should contain the backend message, got: %s", out)
	}
}

func TestWithErrorNil(t *testing.T) {
	logger := Default()
	if logger.WithError(nil) != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	custom := Default()
	SetDefaultLogger(custom)
	if DefaultLogger() != custom {
		t.Error("DefaultLogger should return the configured logger")
	}
}
