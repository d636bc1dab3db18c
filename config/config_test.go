package config

import (
	"os"
	"path/filepath"
	"testing"

	"abalone/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.True(t, cfg.Log.Pretty)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	require.Equal(t, meta.VICTORY_REMOVALS, cfg.Game.VictoryRemovals)
	require.Equal(t, meta.MAX_SELECTION, cfg.Game.MaxSelection)
	require.Equal(t, meta.MAX_TURNS, cfg.Game.MaxTurns)
}

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
log:
  level: debug
  pretty: false
game:
  victory_removals: 3
  max_selection: 2
  max_turns: 40
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
		require.False(t, cfg.Log.Pretty)
		require.Equal(t, GameConfig{VictoryRemovals: 3, MaxSelection: 2, MaxTurns: 40}, cfg.Game)
	})

	t.Run("missing values fall back to defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "game:\n  max_turns: 12\n"))
		require.NoError(t, err)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, meta.VICTORY_REMOVALS, cfg.Game.VictoryRemovals)
		require.Equal(t, 12, cfg.Game.MaxTurns)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game: [1, 2"))
		require.ErrorContains(t, err, "failed to parse config file")
	})

	for name, content := range map[string]string{
		"unknown log level":  "log:\n  level: loud\n",
		"too many removals":  "game:\n  victory_removals: 15\n",
		"selection too long": "game:\n  max_selection: 4\n",
		"negative turns":     "game:\n  max_turns: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.ErrorContains(t, err, "invalid config file")
		})
	}
}
