package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.True(t, cfg.Server.LegacyRoutes)
	assert.Equal(t, "memory", cfg.Cache.Provider)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "tjsp", cfg.DataJud.DefaultCourt)
	assert.Equal(t, 3000, cfg.Analysis.MaxChars)
	assert.Equal(t, int64(25*1024*1024), cfg.Extraction.MaxBytes())
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout())
	assert.False(t, cfg.Auth.Enabled())
	assert.False(t, cfg.Storage.Configured())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JURIS_CACHE_PROVIDER", "none")
	t.Setenv("JURIS_DATAJUD_API_KEY", "key")
	t.Setenv("JURIS_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JURIS_AUTH_JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Cache.Provider)
	assert.True(t, cfg.DataJud.HasCredentials())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Auth.Enabled())
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JURIS_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Server.Port)
}

func TestLoad_UnknownCacheProvider(t *testing.T) {
	t.Setenv("JURIS_CACHE_PROVIDER", "memcached")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_StorageNeedsBucket(t *testing.T) {
	cfg := &config.Config{
		Cache:      config.CacheConfig{Provider: "none"},
		Storage:    config.StorageConfig{Provider: "s3"},
		DataJud:    config.DataJudConfig{DefaultSize: 10, MaxSize: 100},
		Analysis:   config.AnalysisConfig{MaxChars: 3000},
		Extraction: config.ExtractionConfig{MaxDocumentMB: 25},
	}
	assert.Error(t, cfg.Validate())

	cfg.Storage.Bucket = "docs"
	assert.NoError(t, cfg.Validate())
}

func TestLLMConfig_HasCredentials(t *testing.T) {
	assert.False(t, (&config.LLMConfig{Provider: "openai"}).HasCredentials())
	assert.True(t, (&config.LLMConfig{Provider: "openai", APIKey: "k"}).HasCredentials())
	assert.True(t, (&config.LLMConfig{Provider: "vertex", ProjectID: "p"}).HasCredentials())
}

func TestValidate_CacheTTL(t *testing.T) {
	cfg := &config.Config{
		Cache:      config.CacheConfig{Provider: "redis"},
		DataJud:    config.DataJudConfig{DefaultSize: 10, MaxSize: 100},
		Analysis:   config.AnalysisConfig{MaxChars: 3000},
		Extraction: config.ExtractionConfig{MaxDocumentMB: 25},
	}
	assert.Error(t, cfg.Validate())

	cfg.Cache.TTL = time.Minute
	assert.NoError(t, cfg.Validate())

	// A disabled cache stores nothing, so its TTL is irrelevant.
	cfg.Cache = config.CacheConfig{Provider: "none"}
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ZeroCacheTTL(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JURIS_CACHE_TTL", "0s")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.ttl")
}
