package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/logger"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without env file", func(t *testing.T) {
		t.Setenv("LOTTO_LOG_FILE", "")
		t.Setenv("LOTTO_SEED", "")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if cfg.LogFile != "" || cfg.Verbose || cfg.Seed != 0 {
			t.Errorf("Unexpected defaults: %+v", cfg)
		}
	})

	t.Run("Environment values", func(t *testing.T) {
		t.Setenv("LOTTO_LOG_FILE", "logs/lotto.log")
		t.Setenv("LOTTO_VERBOSE", "true")
		t.Setenv("LOTTO_SEED", "42")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if cfg.LogFile != "logs/lotto.log" || !cfg.Verbose || cfg.Seed != 42 {
			t.Errorf("Unexpected config: %+v", cfg)
		}
	})

	t.Run("Bad seed", func(t *testing.T) {
		t.Setenv("LOTTO_SEED", "not-a-number")
		if _, err := Load(""); err == nil {
			t.Fatal("Expected an error for a bad seed, but got nil")
		}
	})

	t.Run("Bad verbose flag", func(t *testing.T) {
		t.Setenv("LOTTO_SEED", "")
		t.Setenv("LOTTO_VERBOSE", "maybe")
		if _, err := Load(""); err == nil {
			t.Fatal("Expected an error for a bad verbose flag, but got nil")
		}
	})
}

func TestInitLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lotto.log")
	closeLogger, err := InitLogger(&Config{LogFile: path})
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	logger.Info("hello from test")
	if err := closeLogger(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log file to have content")
	}
}
