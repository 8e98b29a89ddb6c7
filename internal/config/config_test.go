package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "user1", cfg.DefaultUser)
	assert.Equal(t, 15*time.Second, cfg.AdviceTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SLEEP_STORAGE_BACKEND", "sqlite")
	t.Setenv("SLEEP_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("SLEEP_PORT", "8088")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	assert.Equal(t, 8088, cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Setenv("SLEEP_STORAGE_BACKEND", "postgres")
	_, err := Load()
	assert.Error(t, err, "postgres backend without a DSN must be rejected")

	t.Setenv("SLEEP_POSTGRES_DSN", "postgres://localhost/sleep")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Backend)

	t.Setenv("SLEEP_STORAGE_BACKEND", "carrier-pigeon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SLEEP_STORAGE_BACKEND", "memory")
	t.Setenv("SLEEP_ENV", "qa")
	_, err = Load()
	assert.Error(t, err)
}
