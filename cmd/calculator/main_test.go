package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/config"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	for _, key := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvKeymap, config.EnvMetricsFile, config.EnvLabel, config.EnvWidth} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	saved := CLI
	t.Cleanup(func() { CLI = saved })

	CLI.EnvFile = []string{filepath.Join(t.TempDir(), "missing.env")}
	CLI.LogFormat = "JSON"
	CLI.LogLevel = "WARN"
	CLI.Keymap = "keys.yaml"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "keys.yaml", cfg.KeymapFile)

	CLI.LogFormat = "xml"
	_, err = loadConfig()
	require.Error(t, err)
}
