package config

import (
	"os"
	"path/filepath"
	"testing"

	"boardgames/catalog"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate(), "Defaults should be valid")
	require.Equal(t, zerolog.InfoLevel, c.Level())
	require.Positive(t, c.AI.Goroutines)
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
ai:
  depth: 3
  goroutines: 2
games:
  chess:
    depth: 2
    seed: 7
    prescan: true
arena:
  games: 4
`)
		c, err := LoadFile(path)
		require.NoError(t, err)

		require.Equal(t, zerolog.DebugLevel, c.Level())
		require.Equal(t, 4, c.Arena.Games)
		require.Equal(t, Default().Arena.MaxTurns, c.Arena.MaxTurns, "Unset keys keep their default")

		chess, err := catalog.Lookup("chess")
		require.NoError(t, err)
		ai := c.AIFor(chess)
		require.Equal(t, 2, ai.Depth)
		require.Equal(t, 2, ai.Goroutines)
		require.NotNil(t, ai.Seed)
		require.Equal(t, uint64(7), *ai.Seed)
		require.True(t, ai.Prescan)

		reversi, err := catalog.Lookup("reversi")
		require.NoError(t, err)
		ai = c.AIFor(reversi)
		require.Equal(t, 3, ai.Depth)
		require.Nil(t, ai.Seed)
		require.False(t, ai.Prescan)
	})

	t.Run("reports every problem", func(t *testing.T) {
		path := writeConfig(t, `
log_level: loud
ai:
  depth: -1
games:
  backgammon: {}
arena:
  games: 0
  max_turns: 0
`)
		_, err := LoadFile(path)
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 5)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "ai: [1, 2"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestAIForDefaults(t *testing.T) {
	c := Config{}
	e, err := catalog.Lookup("connectfour")
	require.NoError(t, err)

	ai := c.AIFor(e)

	require.Equal(t, e.Depth, ai.Depth, "Depth falls back to the catalog")
	require.Equal(t, 1, ai.Goroutines)
}

func TestSaveFile(t *testing.T) {
	c := Default()
	seed := uint64(3)
	c.Games = map[string]AI{"mancala": {Depth: 8, Seed: &seed}}
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, c.SaveFile(path))
	loaded, err := LoadFile(path)

	require.NoError(t, err)
	require.Equal(t, c, *loaded)
}
