package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/logger"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when it exists. Variables already set in the
// environment win over the file.
const DefaultEnvFile = ".env"

type Config struct {
	LogFile string `env:"LOTTO_LOG_FILE"`
	Verbose bool   `env:"LOTTO_VERBOSE,default=false"`
	Seed    int64  `env:"LOTTO_SEED,default=0"`
}

// Load reads envFile if present and decodes the LOTTO_* variables. A value
// that does not parse is an error rather than a silent default.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := envdecode.StrictDecode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// InitLogger sets up the process logger. Without a log file the output is
// discarded so it never mixes with the console report. The returned func
// closes the logger and the file.
func InitLogger(cfg *Config) (func() error, error) {
	var w io.Writer = io.Discard
	var file *os.File

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	}

	l := logger.Init("lotto", cfg.Verbose, false, w)
	return func() error {
		// logger.Close may already have closed the file.
		l.Close()
		if file != nil {
			if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				return err
			}
		}
		return nil
	}, nil
}
