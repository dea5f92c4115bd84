package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled, "tracing should be disabled by default")
	require.Equal(t, "file", cfg.Exporter, "default exporter should be file")
	require.Equal(t, "", cfg.FilePath, "file path should be empty by default")
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint, "default OTLP endpoint")
	require.Equal(t, 1.0, cfg.SampleRate, "default sample rate should be 1.0")
	require.Equal(t, "larder", cfg.ServiceName, "default service name")
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err, "should not error when disabled")
	require.NotNil(t, provider, "should return provider even when disabled")
	require.False(t, provider.Enabled(), "provider should report as disabled")

	// Tracer should be no-op but not nil
	tracer := provider.Tracer()
	require.NotNil(t, tracer, "should return a tracer")

	ctx, span := tracer.Start(context.Background(), "test-span")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_Enabled_WithFileExporter(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces.jsonl")

	cfg := Config{
		Enabled:     true,
		Exporter:    "file",
		FilePath:    tracePath,
		SampleRate:  1.0,
		ServiceName: "test-service",
	}

	provider, err := NewProvider(cfg)
	require.NoError(t, err, "should create provider with file exporter")
	require.True(t, provider.Enabled(), "provider should report as enabled")

	tracer := provider.Tracer()
	ctx, span := tracer.Start(context.Background(), "test-span")
	require.NotNil(t, ctx)

	sc := span.SpanContext()
	require.True(t, sc.IsValid(), "span context should be valid")
	require.True(t, sc.TraceID().IsValid(), "trace ID should be valid")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should exist")
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "file"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported exporter")
}

func TestNewProvider_NoneExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "none"})
	require.NoError(t, err, "none exporter should be accepted")
	require.True(t, provider.Enabled())
	require.NoError(t, provider.Shutdown(context.Background()))
}
