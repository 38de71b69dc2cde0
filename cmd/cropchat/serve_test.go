package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetServeFlags restores the serve flag variables to their unset state
// once the test is done.
func resetServeFlags(t *testing.T) {
	t.Cleanup(func() {
		serveConfigPath = ""
		serveAddr = ""
		serveDataPath = ""
		serveStaticDir = ""
		serveLogLevel = ""
	})
}

func TestServeConfig(t *testing.T) {
	t.Run("Defaults without file or flags", func(t *testing.T) {
		resetServeFlags(t)

		cfg, err := serveConfig()
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Addr)
		assert.Equal(t, "data/crop_data.json", cfg.DataPath)
		assert.Equal(t, "static", cfg.StaticDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		resetServeFlags(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nlog_level: \"debug\"\n"), 0o600))
		serveConfigPath = path

		cfg, err := serveConfig()
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "static", cfg.StaticDir)
	})

	t.Run("Flags override the file", func(t *testing.T) {
		resetServeFlags(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nstatic_dir: \"public\"\n"), 0o600))
		serveConfigPath = path
		serveAddr = ":7777"
		serveLogLevel = "warn"

		cfg, err := serveConfig()
		require.NoError(t, err)
		assert.Equal(t, ":7777", cfg.Addr)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "public", cfg.StaticDir)
	})

	t.Run("Unreadable config file is an error", func(t *testing.T) {
		resetServeFlags(t)
		serveConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := serveConfig()
		assert.Error(t, err)
	})
}
