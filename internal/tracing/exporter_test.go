package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)
	require.NotNil(t, exporter)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created with parent dirs")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestNewFileExporter_AppendsToExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces.jsonl")

	err := os.WriteFile(tracePath, []byte(`{"existing": "data"}`+"\n"), 0644)
	require.NoError(t, err)

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      "test-span",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(100 * time.Millisecond),
	}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	require.Equal(t, 2, lines, "file should have original line plus new span")
}

func TestFileExporter_WritesValidJSONL(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      "grocery.generate",
		SpanKind:  trace.SpanKindInternal,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(100 * time.Millisecond),
		Status: sdktrace.Status{
			Code: codes.Ok,
		},
		Attributes: []attribute.KeyValue{
			attribute.String(AttrRecipeGUID, "guid-123"),
			attribute.Int(AttrSelectionCount, 3),
		},
		Events: []sdktrace.Event{
			{Name: "fetch.completed", Time: time.Now()},
		},
	}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)

	var record SpanRecord
	require.NoError(t, json.Unmarshal(content, &record))
	require.Equal(t, "grocery.generate", record.Name)
	require.Equal(t, "INTERNAL", record.Kind)
	require.Equal(t, "OK", record.Status)
	require.InDelta(t, 100.0, record.DurationMs, 1.0)
	require.Equal(t, "guid-123", record.Attributes[AttrRecipeGUID])
	require.Len(t, record.Events, 1)
}

func TestFileExporter_EmptyBatchIsNoop(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	require.NoError(t, exporter.ExportSpans(context.Background(), nil))
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Empty(t, content)
}
