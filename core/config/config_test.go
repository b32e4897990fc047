package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "journal", cfg.Journal.Directory)
		assert.Equal(t, "#@", cfg.Journal.TagSymbols)
		assert.Equal(t, "2006-01-02 15:04", cfg.Journal.TimeFormat)
		assert.Empty(t, cfg.Journal.Editor)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "daybook", cfg.Storage.Bucket)
		assert.Equal(t, "entries", cfg.Storage.Prefix)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		t.Setenv("JOURNAL_DIRECTORY", "/var/journals/mine")
		t.Setenv("JOURNAL_TAG_SYMBOLS", "#")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "/var/journals/mine", cfg.Journal.Directory)
		assert.Equal(t, "#", cfg.Journal.TagSymbols)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
