package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	service, closeFn, err := New(Options{Level: "debug", Console: &buf})
	if err != nil {
		t.Fatalf("Failed to create logging service: %v", err)
	}
	defer closeFn()

	logger := service.GetLogger()
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}

	logger.Debug("classified operation", zap.String("rule", "instance"))
	out := buf.String()
	if !strings.Contains(out, "classified operation") || !strings.Contains(out, "instance") {
		t.Errorf("console output missing entry: %q", out)
	}
}

func TestLoggingService_LevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "ERROR")

	var buf bytes.Buffer
	service, closeFn, err := New(Options{Console: &buf})
	if err != nil {
		t.Fatalf("Failed to create logging service: %v", err)
	}
	defer closeFn()

	service.GetLogger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("WARN entry logged at ERROR level: %q", buf.String())
	}
}

func TestLoggingService_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "codegen.log")

	var buf bytes.Buffer
	service, closeFn, err := New(Options{Level: "info", File: logPath, Console: &buf})
	if err != nil {
		t.Fatalf("Failed to create logging service: %v", err)
	}
	service.GetLogger().Info("metadata written", zap.String("path", "out/compute_metadata.yaml"))
	closeFn()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"metadata written"`) {
		t.Errorf("unexpected log file content: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"DEBUG":   zapcore.DebugLevel,
		"debug":   zapcore.DebugLevel,
		"Warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
