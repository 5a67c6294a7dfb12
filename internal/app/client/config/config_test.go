package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, CacheSQLite, cfg.CacheBackend)
	assert.Equal(t, "localStudents", cfg.CacheKey)
	assert.Equal(t, 10*time.Second, cfg.ListTimeout)
	assert.Equal(t, "testuser@example.com", cfg.CorrectUsername)
	assert.Equal(t, 10, cfg.RowsPerPage)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_FromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("API_URL", "http://mock.local/users/")
	t.Setenv("CACHE_BACKEND", "Memory")
	t.Setenv("LIST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://mock.local/users", cfg.APIURL)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 3*time.Second, cfg.ListTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("CACHE_BACKEND", "floppy")

	_, err := Load()
	assert.Error(t, err)
}
