package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/tracing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Contains(t, cfg.DatabasePath, "larder.db")
	assert.NotEmpty(t, cfg.LogPath)
	assert.True(t, cfg.AutoRefresh)
	assert.False(t, cfg.Cache.Disabled)
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "file", cfg.Tracing.Exporter)
	assert.Contains(t, cfg.Tracing.FilePath, "traces.jsonl")
}

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestCacheConfig_TTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, CacheConfig{}.TTL(), "unset TTL falls back to default")
	assert.Equal(t, 30*time.Minute, CacheConfig{TTLMinutes: 30}.TTL())
}

func TestValidateCache(t *testing.T) {
	require.NoError(t, ValidateCache(CacheConfig{TTLMinutes: 0}))
	require.NoError(t, ValidateCache(CacheConfig{TTLMinutes: 10}))

	err := ValidateCache(CacheConfig{TTLMinutes: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ttl_minutes")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     tracing.Config
		wantErr string
	}{
		{"zero value", tracing.Config{}, ""},
		{"defaults", tracing.DefaultConfig(), ""},
		{"sample rate too high", tracing.Config{SampleRate: 1.5}, "sample_rate"},
		{"sample rate negative", tracing.Config{SampleRate: -0.1}, "sample_rate"},
		{"bad exporter", tracing.Config{Exporter: "carrier-pigeon"}, "exporter"},
		{
			"file exporter without path while enabled",
			tracing.Config{Enabled: true, Exporter: "file"},
			"file_path",
		},
		{
			"file exporter without path while disabled",
			tracing.Config{Enabled: false, Exporter: "file"},
			"",
		},
		{
			"otlp exporter without endpoint while enabled",
			tracing.Config{Enabled: true, Exporter: "otlp"},
			"otlp_endpoint",
		},
		{
			"otlp exporter with endpoint",
			tracing.Config{Enabled: true, Exporter: "otlp", OTLPEndpoint: "localhost:4317"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
