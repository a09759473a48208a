package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("session started", "session", "abc")
	Warn("no reference image found", "indicator", "Fin Condition")

	data, err := os.ReadFile(filepath.Join(logDir, "salmonometer.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "no reference image found") {
		t.Errorf("Log file does not contain the warning: %s", data)
	}
}

func TestInitDebugMode(t *testing.T) {
	if err := Init(Config{Debug: true, ConfigDir: t.TempDir()}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}
	Debug("Test debug message in debug mode")
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitWithUnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := Init(Config{ConfigDir: file}); err == nil {
		t.Error("Expected error when the config dir is a regular file")
	}
}

func TestWithAddsFields(t *testing.T) {
	configDir := t.TempDir()
	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	With("session", "3f2a").Info("Session exported", "files", 2)

	data, err := os.ReadFile(filepath.Join(configDir, "logs", "salmonometer.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "session=3f2a") || !strings.Contains(string(data), "files=2") {
		t.Errorf("Log entry misses the scoped fields: %s", data)
	}
}

func TestWithoutInitDiscards(t *testing.T) {
	Logger = nil

	l := With("session", "3f2a")
	if l == nil {
		t.Fatal("With returned nil before Init")
	}
	l.Warn("dropped")
}
