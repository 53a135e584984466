package metricbundle

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// StreamMetrics representa métricas de suscripciones server-streaming
type StreamMetrics struct {
	*BaseMetrics

	// EventCounter contabiliza los eventos recibidos por stream.
	EventCounter metric.Int64Counter

	// GapHistogram mide los segundos transcurridos entre eventos consecutivos.
	GapHistogram metric.Float64Histogram
}

// NewStreamMetrics inicializa un nuevo bundle de métricas para streams
func NewStreamMetrics(client MetricsClient) *StreamMetrics {
	base := NewBaseMetrics(client, "gridmarket", "stream")

	return &StreamMetrics{
		BaseMetrics: base,
		EventCounter: client.Counter(
			MetricName("gridmarket", "stream", "events"),
			"Events received per stream subscription.",
		),
		GapHistogram: client.Histogram(
			MetricName("gridmarket", "stream", "gap"),
			"Seconds elapsed between consecutive stream events.",
		),
	}
}

// ----------------------------------------------------------------------------------
// Bundle global singleton con inicialización segura para concurrencia
// ----------------------------------------------------------------------------------

var (
	globalStreamMetrics   *StreamMetrics
	onceInitStreamMetrics sync.Once
)

// InitGlobalStreamBundle inicializa el bundle global para uso compartido
func InitGlobalStreamBundle(client MetricsClient) {
	onceInitStreamMetrics.Do(func() {
		globalStreamMetrics = NewStreamMetrics(client)
	})
}

// GetGlobalStreamMetrics retorna el bundle global ya inicializado
func GetGlobalStreamMetrics() *StreamMetrics {
	return globalStreamMetrics // nil si no inicializado (no-op seguro)
}

// ----------------------------------------------------------------------------------
// Helpers para casos de uso comunes
// ----------------------------------------------------------------------------------

// RecordStreamEvent registra un evento recibido en el stream indicado.
// Use los valores de semconv.StreamValues para el nombre del stream.
func (sm *StreamMetrics) RecordStreamEvent(
	ctx context.Context,
	stream string,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := append([]attribute.KeyValue{
		semconv.Market.Stream.String(stream),
	}, additionalAttrs...)

	name := MetricName(sm.namespace, sm.entity, "events")
	sm.client.RecordCounter(ctx, name, 1, attrs...)
}

// RecordEventGap registra los segundos transcurridos desde el evento anterior
func (sm *StreamMetrics) RecordEventGap(
	ctx context.Context,
	stream string,
	gapSeconds float64,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := append([]attribute.KeyValue{
		semconv.Market.Stream.String(stream),
	}, additionalAttrs...)

	name := MetricName(sm.namespace, sm.entity, "gap")
	sm.client.RecordHistogram(ctx, name, gapSeconds, attrs...)
}

// RecordStreamInterrupted registra un corte del stream y el código de error
// con el que terminó.
func (sm *StreamMetrics) RecordStreamInterrupted(
	ctx context.Context,
	stream string,
	errorCode string,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := append([]attribute.KeyValue{
		semconv.Market.Stream.String(stream),
		semconv.Market.ErrorCode.String(errorCode),
		semconv.Metrics.Status.String("error"),
	}, additionalAttrs...)

	sm.RecordResult(ctx, attrs...)
}

// RecordReconnect registra un intento de reconexión de la suscripción
func (sm *StreamMetrics) RecordReconnect(
	ctx context.Context,
	stream string,
	attempt int,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := append([]attribute.KeyValue{
		semconv.Market.Stream.String(stream),
		semconv.Market.Attempt.Int(attempt),
		semconv.Metrics.Action.String("reconnect"),
	}, additionalAttrs...)

	sm.RecordResult(ctx, attrs...)
}
