package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BaseURLPrecedence(t *testing.T) {
	t.Run("compiled default", func(t *testing.T) {
		t.Setenv("RKCP_API_BASE_URL", "")
		t.Setenv("APP_ENV", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://rkcp-score.vercel.app", cfg.RKCP.BaseURL)
	})

	t.Run("development profile", func(t *testing.T) {
		t.Setenv("RKCP_API_BASE_URL", "")
		t.Setenv("APP_ENV", "development")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", cfg.RKCP.BaseURL)
	})

	t.Run("explicit override beats the profile", func(t *testing.T) {
		t.Setenv("RKCP_API_BASE_URL", "http://example.test:9000")
		t.Setenv("APP_ENV", "development")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://example.test:9000", cfg.RKCP.BaseURL)
	})
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.Suggest.Debounce)
	assert.Equal(t, 2, cfg.Suggest.MinQueryLen)
	assert.Equal(t, 500, cfg.Suggest.PoolSize)
	assert.Equal(t, 10, cfg.Suggest.DefaultLimit)
	assert.Equal(t, 50, cfg.List.PageSize)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 15*time.Second, cfg.RKCP.Timeout)
}
