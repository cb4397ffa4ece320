package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./presentes.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.False(t, cfg.CookieSecure)
	assert.Len(t, cfg.CSRFKey, 32)
	assert.Len(t, cfg.SessionKey, 32)
}

func TestLoadConfig_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfig_ExplicitKeys(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	t.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString(key))
	t.Setenv("CSRF_KEY", base64.StdEncoding.EncodeToString(key))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, key, cfg.SessionKey)
	assert.Equal(t, key, cfg.CSRFKey)
}

func TestLoadConfig_ShortKeyRegenerates(t *testing.T) {
	t.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString([]byte("short")))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.SessionKey, 32)
	assert.NotEqual(t, []byte("short"), cfg.SessionKey)
}
