package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: everything else falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, 15, conf.Game.BoardSize)
		assert.InDelta(t, 40.0, conf.Game.CellSize, 1e-9)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 30*time.Minute, conf.Game.SessionTTL)
		assert.Equal(t, time.Minute, conf.Game.SweepInterval)
	})

	t.Run("Reads nested game and redis sections", func(t *testing.T) {
		path := writeConfig(t, "game:\n  board-size: 19\n  cell-size: 32\nredis:\n  host: cache\n  port: \"7000\"\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 19, conf.Game.BoardSize)
		assert.InDelta(t, 32.0, conf.Game.CellSize, 1e-9)
		assert.Equal(t, "cache:7000", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects a non-positive board size", func(t *testing.T) {
		path := writeConfig(t, "game:\n  board-size: -3\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})

	t.Run("Rejects a board size above the maximum", func(t *testing.T) {
		path := writeConfig(t, "game:\n  board-size: 101\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})

	t.Run("Rejects NaN and infinite cell sizes", func(t *testing.T) {
		for _, value := range []string{".nan", ".inf"} {
			path := writeConfig(t, "game:\n  cell-size: "+value+"\n")

			_, err := Load(path)

			require.ErrorIs(t, err, apperror.ErrInvalidCellSize, "cell-size %s", value)
		}
	})

	t.Run("Rejects a non-positive cell size", func(t *testing.T) {
		path := writeConfig(t, "game:\n  cell-size: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidCellSize)
	})

	t.Run("Reads session lifetime settings", func(t *testing.T) {
		path := writeConfig(t, "game:\n  session-ttl: 5m\n  sweep-interval: 10s\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, conf.Game.SessionTTL)
		assert.Equal(t, 10*time.Second, conf.Game.SweepInterval)
	})

	t.Run("Rejects a negative session ttl", func(t *testing.T) {
		path := writeConfig(t, "game:\n  session-ttl: -1m\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidSessionTTL)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
