package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// When: the config file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.Expiration)
	})

	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nstorage: redis\nredis:\n  host: cache\n  port: \"6380\"\n  expiration: 1h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.Expiration)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("REDIS_HOST", "redis.local")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "redis.local:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE", "sqlite")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrUnknownStorage)
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("STORAGE", "postgres")

	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}
