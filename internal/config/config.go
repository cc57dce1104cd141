package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"calcpad/internal/logfields"
)

const (
	EnvLogLevel    = "CALC_LOG_LEVEL"
	EnvLogFormat   = "CALC_LOG_FORMAT"
	EnvKeymap      = "CALC_KEYMAP"
	EnvMetricsFile = "CALC_METRICS_FILE"
	EnvLabel       = "CALC_LABEL"
	EnvWidth       = "CALC_WIDTH"
)

// DefaultEnvFiles are tried in order; the first one that loads wins.
var DefaultEnvFiles = []string{".env", "../.env", "../../.env"}

const (
	defaultLabel = "Calculator"
	defaultWidth = 24
	minWidth     = 16
)

type Config struct {
	LogLevel    slog.Level
	LogFormat   string
	KeymapFile  string
	MetricsFile string
	Label       string
	Width       int
}

// Load reads .env files (existing environment variables win) and builds the
// configuration from the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			slog.Debug("Loaded environment file", logfields.Path(file))
			break
		}
	}

	cfg := &Config{
		LogFormat:   strings.ToLower(getEnvOrDefault(EnvLogFormat, "text")),
		KeymapFile:  os.Getenv(EnvKeymap),
		MetricsFile: os.Getenv(EnvMetricsFile),
		Label:       getEnvOrDefault(EnvLabel, defaultLabel),
		Width:       defaultWidth,
	}

	if err := cfg.SetLogLevel(getEnvOrDefault(EnvLogLevel, "info")); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvWidth); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvWidth, v, err)
		}
		cfg.Width = w
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetLogLevel parses a level name such as "debug" or "warn".
func (c *Config) SetLogLevel(name string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	c.LogLevel = lvl
	return nil
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.LogFormat)
	}
	if c.Width < minWidth {
		return fmt.Errorf("panel width %d is below the minimum of %d", c.Width, minWidth)
	}
	return nil
}

// NewLogger builds the slog logger described by the configuration.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
