package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/taskgate/internal/config"
)

func TestEnvReader_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "HTTP_HOST", "PORT", "HTTP_SHUTDOWN_TIMEOUT",
		"REMOTE_HOST", "REMOTE_TIMEOUT", "TASKGATE_SECRETS_FILE",
		"CREDENTIAL_CACHE_TTL", "STATIC_ROOT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, config.EnvLocal, cfg.Env)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "api.taskhub.dev", cfg.Remote.Host)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Empty(t, cfg.Credential.SecretsFile)
	assert.Zero(t, cfg.Credential.CacheTTL)
	assert.Equal(t, "public", cfg.Static.Root)
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", config.EnvProd)
	t.Setenv("PORT", "8088")
	t.Setenv("REMOTE_TIMEOUT", "2s")
	t.Setenv("CREDENTIAL_CACHE_TTL", "1m")

	cfg, err := config.NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, config.EnvProd, cfg.Env)
	assert.Equal(t, "8088", cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, time.Minute, cfg.Credential.CacheTTL)
}

func TestFileReader(t *testing.T) {
	t.Setenv("STATIC_ROOT", "")
	require.NoError(t, os.Unsetenv("STATIC_ROOT"))
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	path := filepath.Join(t.TempDir(), "taskgate.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4000\nSTATIC_ROOT=web\n"), 0o600))

	cfg, err := config.NewFileReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.HTTP.Port)
	assert.Equal(t, "web", cfg.Static.Root)
}

func TestFileReader_MissingFile(t *testing.T) {
	_, err := config.NewFileReader(filepath.Join(t.TempDir(), "nope.env")).Read()
	assert.Error(t, err)
}
