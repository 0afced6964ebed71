package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// EnvDataPath names the environment variable holding the data file path.
	EnvDataPath = "WORKERS_DATA"

	// DotEnvFile is loaded from beside the executable when present.
	DotEnvFile = ".env"
)

// ErrDataPathMissing is returned when neither --data nor WORKERS_DATA is set.
var ErrDataPathMissing = errors.New("the data file name is absent")

// Config is built once per invocation and handed to the dispatcher.
type Config struct {
	// DataPath is the roster file to load and, for writes, to rewrite.
	DataPath string

	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level
}

// DefaultConfig returns a config with no data path and warn-level logging.
func DefaultConfig() Config {
	return Config{LogLevel: slog.LevelWarn}
}

// Resolve fills DataPath from the flag value, falling back to the
// environment. getenv is usually os.Getenv.
func (c Config) Resolve(flagValue string, getenv func(string) string) (Config, error) {
	path := flagValue
	if path == "" && getenv != nil {
		path = getenv(EnvDataPath)
	}
	if path == "" {
		return c, ErrDataPathMissing
	}
	c.DataPath = path
	return c, nil
}

// ParseLogLevel accepts debug, info, warn or error (any case).
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, err
	}
	return lvl, nil
}

// LoadDotEnv populates the environment from dir/.env. Variables already set
// are kept, and a missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// ExecutableDir returns the directory holding the running binary, or "" if
// it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
