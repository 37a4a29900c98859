package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letteragent/letteragent/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.StoreFile, cfg.Store)
	assert.Equal(t, "Formal", cfg.DefaultTone)
	assert.Equal(t, 1500, cfg.ThinkingDelayMS)
	assert.Equal(t, 1500*time.Millisecond, cfg.ThinkingDelay())
	assert.Equal(t, float64(12), cfg.Export.FontSize)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFileName)
		content := `data_dir: /tmp/letters
store: sqlite
default_tone: Persuasive
thinking_delay_ms: 250
export:
  font_path: /usr/share/fonts/serif.ttf
  font_size: 11
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/letters", cfg.DataDir)
		assert.Equal(t, config.StoreSQLite, cfg.Store)
		assert.Equal(t, "Persuasive", cfg.DefaultTone)
		assert.Equal(t, 250*time.Millisecond, cfg.ThinkingDelay())
		assert.Equal(t, "/usr/share/fonts/serif.ttf", cfg.Export.FontPath)
		assert.Equal(t, float64(11), cfg.Export.FontSize)
	})

	t.Run("PartialConfigFillsDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("store: sqlite\n"), 0644))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, config.StoreSQLite, cfg.Store)
		assert.Equal(t, "Formal", cfg.DefaultTone)
		assert.Equal(t, 1500, cfg.ThinkingDelayMS)
		assert.NotEmpty(t, cfg.DataDir)
	})

	t.Run("MalformedYAMLErrors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("store: [broken\n"), 0644))

		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("ExplicitPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		require.NoError(t, os.WriteFile(path, []byte("default_tone: Semi-formal\n"), 0644))

		cfg := config.LoadOrDefault(path)
		assert.Equal(t, "Semi-formal", cfg.DefaultTone)
	})

	t.Run("MissingExplicitPathFallsBack", func(t *testing.T) {
		cfg := config.LoadOrDefault(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Equal(t, "Formal", cfg.DefaultTone)
	})
}
