package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"API_PORT", "CORPUS_PATH", "REDIS_ADDR", "CHECK_RATE_LIMIT", "RELOAD_CRON"} {
		t.Setenv(key, "")
	}
	t.Setenv("CHECK_RATE_LIMIT", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "", cfg.APIPort) // set but empty wins over the default
	assert.Equal(t, 30, cfg.CheckRateLimit)
	assert.Equal(t, 72*time.Hour, cfg.JWTExp)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.ReloadCron)
}

func TestConfig_UsesDefaultJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	assert.True(t, FromEnv().UsesDefaultJWTSecret())

	t.Setenv("JWT_SECRET", "s3cret")
	assert.False(t, FromEnv().UsesDefaultJWTSecret())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("CORPUS_PATH", "/srv/euler/problems.txt")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CHECK_RATE_LIMIT", "5")
	t.Setenv("CHECK_RATE_WINDOW_SECONDS", "10")
	t.Setenv("RELOAD_CRON", "*/5 * * * *")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.APIPort)
	assert.Equal(t, "/srv/euler/problems.txt", cfg.CorpusPath)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5, cfg.CheckRateLimit)
	assert.Equal(t, 10*time.Second, cfg.CheckRateWindow)
	assert.Equal(t, "*/5 * * * *", cfg.ReloadCron)
	assert.Equal(t, []byte("s3cret"), cfg.JWTKey)
}
