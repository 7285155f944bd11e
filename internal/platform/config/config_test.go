package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "key_123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3005", cfg.Port)
	assert.Equal(t, "http://localhost:3005", cfg.PublicBase)
	assert.Equal(t, "./audio", cfg.AudioDir)
	assert.True(t, cfg.VerifySignature)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 256, cfg.MaxViewerConnections)
}

func TestLoad_PublicBaseFollowsPort(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "key_123")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.PublicBase)
}

func TestLoad_ExplicitPublicBaseWins(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "key_123")
	t.Setenv("PUBLIC_BASE", "https://avatars.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://avatars.example.com", cfg.PublicBase)
}

func TestLoad_VerificationWithoutKeyFails(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "")
	t.Setenv("RETELL_VERIFY_SIGNATURE", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RETELL_API_KEY is required")
}

func TestLoad_VerificationDisabledAllowsMissingKey(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "")
	t.Setenv("RETELL_VERIFY_SIGNATURE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.VerifySignature)
}

func TestLoad_MaxViewerConnectionsValidated(t *testing.T) {
	t.Setenv("RETELL_API_KEY", "key_123")
	t.Setenv("MAX_VIEWER_CONNECTIONS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_VIEWER_CONNECTIONS")
}
