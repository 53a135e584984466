package telemetry

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("gridwatch", "production")

	assert.Equal(t, "gridwatch", cfg.ServiceName)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Insecure)
	assert.True(t, cfg.EnableLogs)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableTraces)
}

func TestEndpointFallback(t *testing.T) {
	cfg := DefaultConfig("gridwatch", "test")
	cfg.OTLPEndpoint = "collector:4317"

	assert.Equal(t, "collector:4317", cfg.tracesEndpoint())
	assert.Equal(t, "collector:4317", cfg.metricsEndpoint())

	// Los endpoints específicos ganan sobre el común
	cfg.OTLPTracesEndpoint = "traces:4317"
	cfg.OTLPMetricsEndpoint = "metrics:4317"
	assert.Equal(t, "traces:4317", cfg.tracesEndpoint())
	assert.Equal(t, "metrics:4317", cfg.metricsEndpoint())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("no-such-level"))
}

func TestNewAppliesOptions(t *testing.T) {
	ctx := context.Background()

	// Solo logs: sin exporters, el test no necesita un collector
	client, err := New(ctx, "gridwatch", "test",
		WithVersion("1.2.3"),
		WithLogLevel("DEBUG"),
		WithLogFormat("pretty"),
		WithInsecure(false),
		WithMetricsDisabled(),
		WithTracesDisabled(),
	)
	require.NoError(t, err)
	defer func() {
		_ = client.Shutdown(ctx)
	}()

	assert.Equal(t, "1.2.3", client.config.ServiceVersion)
	assert.Equal(t, "DEBUG", client.config.LogLevel)
	assert.Equal(t, "pretty", client.config.LogFormat)
	assert.False(t, client.config.Insecure)
	assert.NotNil(t, client.logger)
}

func TestCounterWithMetricsDisabled(t *testing.T) {
	ctx := context.Background()
	client, err := New(ctx, "gridwatch", "test",
		WithMetricsDisabled(),
		WithTracesDisabled(),
	)
	require.NoError(t, err)

	_, err = client.GetOrCreateCounter("gridmarket.order.result", "")
	assert.Error(t, err)
	assert.Nil(t, client.Counter("gridmarket.order.result", ""))
	assert.Nil(t, client.Histogram("gridmarket.order.duration", ""))
}

func TestContextAttrBranchesAreIndependent(t *testing.T) {
	base := AppendCommonAttrs(context.Background(),
		attribute.String("component", "watcher"),
	)

	left := AppendCommonAttrs(base, attribute.String("branch", "left"))
	right := AppendCommonAttrs(base, attribute.String("branch", "right"))

	leftAttrs := GetCommonAttrs(left)
	rightAttrs := GetCommonAttrs(right)

	require.Len(t, leftAttrs, 2)
	require.Len(t, rightAttrs, 2)
	assert.Equal(t, "left", leftAttrs[1].Value.AsString())
	assert.Equal(t, "right", rightAttrs[1].Value.AsString(),
		"una rama no debe pisar los atributos de la otra")
}

func TestMergedAttrsOrder(t *testing.T) {
	ctx := AppendCommonAttrs(context.Background(), attribute.String("a", "common"))
	ctx = AppendEventAttrs(ctx, attribute.String("b", "event"))
	ctx = AppendMetricAttrs(ctx, attribute.String("c", "metric"))

	event := mergedEventAttrs(ctx, []attribute.KeyValue{attribute.String("d", "call")})
	require.Len(t, event, 3)
	assert.Equal(t, attribute.Key("a"), event[0].Key)
	assert.Equal(t, attribute.Key("b"), event[1].Key)
	assert.Equal(t, attribute.Key("d"), event[2].Key)

	metric := mergedMetricAttrs(ctx, nil)
	require.Len(t, metric, 2)
	assert.Equal(t, attribute.Key("c"), metric[1].Key)

	assert.Nil(t, mergedEventAttrs(context.Background(), nil))
}
