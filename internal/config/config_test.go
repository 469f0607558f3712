package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/iconkit/internal/config"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"ICONKIT_ADDR", "ICONKIT_OVERLAY", "ICONKIT_SHUTDOWN_TIMEOUT", "LOG_FORMAT", "LOG_LEVEL"} {
		// t.Setenv restores the previous value when the test ends.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Empty(t, cfg.GetOverlayPath())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeout())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("ICONKIT_ADDR", "127.0.0.1:9090")
	t.Setenv("ICONKIT_OVERLAY", "/etc/iconkit/overlay.hcl")
	t.Setenv("ICONKIT_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Parse()
	require.NoError(t, err)

	var provider config.Provider = cfg
	assert.Equal(t, "127.0.0.1:9090", provider.GetAddr())
	assert.Equal(t, "/etc/iconkit/overlay.hcl", provider.GetOverlayPath())
	assert.Equal(t, 3*time.Second, provider.GetShutdownTimeout())
	assert.Equal(t, "json", provider.GetLogFormat())
	assert.Equal(t, "debug", provider.GetLogLevel())
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("ICONKIT_SHUTDOWN_TIMEOUT", "soon")
		_, err := config.Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})

	t.Run("non-positive duration", func(t *testing.T) {
		t.Setenv("ICONKIT_SHUTDOWN_TIMEOUT", "0s")
		_, err := config.Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}
