package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Empty(t, cfg.Upstream.JobSearchURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "2s")
	t.Setenv("JOBSEARCH_BASE_URL", "http://localhost:1234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "http://localhost:1234", cfg.Upstream.JobSearchURL)
}

func TestLoad_RejectsUnknownTransport(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_RejectsBadFetchSettings(t *testing.T) {
	cfg := Config{Transport: TransportStdio, Fetch: FetchConfig{Timeout: 0, Retries: 3}}
	assert.Error(t, cfg.Validate())

	cfg = Config{Transport: TransportStdio, Fetch: FetchConfig{Timeout: time.Second, Retries: -1}}
	assert.Error(t, cfg.Validate())
}
