package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REDIS_URL", "MAP_ZOOM", "DIRECTORY_SEED", "CORS_ALLOWED_ORIGINS", "PHOTO_MAX_BYTES", "REDIS_PUBLISH_TIMEOUT_MS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Redis.URL)
	assert.True(t, cfg.Directory.Seed)
	assert.Equal(t, 10, cfg.Directory.MapZoom)
	assert.Equal(t, defaultTileURL, cfg.Directory.TileURL)
	assert.Equal(t, int64(5<<20), cfg.Directory.PhotoMaxBytes)
	assert.Equal(t, 500*time.Millisecond, cfg.Redis.PublishTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DIRECTORY_SEED", "false")
	t.Setenv("MAP_ZOOM", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://example.com ,")
	t.Setenv("ADMIN_RATE_LIMIT", "2.5")
	t.Setenv("REDIS_PUBLISH_TIMEOUT_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Directory.Seed)
	assert.Equal(t, 12, cfg.Directory.MapZoom)
	assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.Server.AdminRateLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.Redis.PublishTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAP_ZOOM", "close")
	t.Setenv("DIRECTORY_SEED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Directory.MapZoom)
	assert.True(t, cfg.Directory.Seed)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080", AdminRateLimit: 1, AdminRateBurst: 1},
			Redis:     RedisConfig{PublishTimeout: time.Second},
			Directory: DirectoryConfig{MapZoom: 10, PhotoMaxBytes: 1},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Server.Port = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.Directory.MapZoom = 25
	assert.Error(t, c.Validate())

	c = valid()
	c.Directory.PhotoMaxBytes = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Redis.PublishTimeout = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Server.AdminRateBurst = 0
	assert.Error(t, c.Validate())
}
