package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrides(m map[string]any) *confmap.Confmap {
	return confmap.Provider(m, ".")
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(overrides(map[string]any{}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.Timeout.ReadHeader)
	assert.Equal(t, 10*time.Second, cfg.Timeout.Shutdown)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "TestDotnetApi", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Zero(t, cfg.RateLimit.Limit)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(overrides(map[string]any{
		"server.host":      "127.0.0.1",
		"server.port":      "9090",
		"timeout.shutdown": "3s",
		"log.level":        "debug",
		"app.name":         "storeapi",
		"metrics.enabled":  "true",
		"metrics.token":    "s3cret",
		"ratelimit.limit":  "100",
		"ratelimit.window": "30s",
		"cors.origins":     "https://a.example,https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.Timeout.Shutdown)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "storeapi", cfg.App.Name)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)

	assert.NotContains(t, cfg.String(), "s3cret")
}

func TestLoadFrom_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		in   map[string]any
	}{
		{name: "port out of range", in: map[string]any{"server.port": 70000}},
		{name: "unknown log level", in: map[string]any{"log.level": "verbose"}},
		{name: "metrics without token", in: map[string]any{"metrics.enabled": true}},
		{name: "empty app name", in: map[string]any{"app.name": ""}},
		{name: "rate limit without window", in: map[string]any{"ratelimit.limit": 5, "ratelimit.window": "0s"}},
		{name: "negative rate limit", in: map[string]any{"ratelimit.limit": -1}},
		{name: "zero shutdown timeout", in: map[string]any{"timeout.shutdown": "0s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFrom(overrides(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "timeout.readheader", envKey("STOREAPI_TIMEOUT_READHEADER"))
	assert.Equal(t, "metrics.token", envKey("STOREAPI_METRICS_TOKEN"))
	assert.Equal(t, "server.port", envKey("STOREAPI_SERVER_PORT"))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STOREAPI_SERVER_PORT", "8181")
	t.Setenv("STOREAPI_APP_VERSION", "2.0.0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}
