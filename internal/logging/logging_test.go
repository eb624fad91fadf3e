package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formctl/internal/config"
)

func TestNewWritesRotatingFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "formctl.log")

	logger, err := New(cfg, WithConsoleOutput(zapcore.AddSync(&bytes.Buffer{})))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello from the test")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log file missing entry:\n%s", data)
	}
}

func TestConsoleFloorKeepsInfoOffTheTerminal(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "formctl.log")
	var console bytes.Buffer

	logger, err := New(cfg,
		WithConsoleOutput(zapcore.AddSync(&console)),
		WithConsoleFloor(zapcore.WarnLevel),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("record saved")
	logger.Warn("submission failed")
	_ = logger.Sync()

	out := console.String()
	if strings.Contains(out, "record saved") || !strings.Contains(out, "submission failed") {
		t.Fatalf("console output filtered wrongly:\n%s", out)
	}
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "record saved") {
		t.Fatalf("file core lost the info entry:\n%s", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected an error for level %q", cfg.Level)
	}
}
