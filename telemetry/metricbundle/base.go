package metricbundle

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsClient define la interfaz para recopilar métricas a través de OpenTelemetry.
// Los bundles solo necesitan estas cuatro operaciones; telemetry.Client las
// implementa directamente.
type MetricsClient interface {
	// Counter crea o retorna un contador existente. Retorna nil si las
	// métricas están deshabilitadas; los bundles toleran instrumentos nil.
	Counter(name, description string) metric.Int64Counter

	// Histogram crea o retorna un histograma existente.
	Histogram(name, description string) metric.Float64Histogram

	// RecordCounter incrementa un contador con un valor específico.
	RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue)

	// RecordHistogram registra un valor en un histograma.
	RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue)
}

// BaseMetrics contiene contadores y histogramas comunes a todos los bundles de métricas.
// Proporciona funcionalidad base para registrar resultados y duraciones de operaciones,
// y sirve como componente fundamental para todos los bundles específicos de dominio.
type BaseMetrics struct {
	// client es la implementación de MetricsClient para registrar métricas.
	client MetricsClient

	// entity representa el tipo de entidad que este bundle monitorea (order, trade, stream, etc.).
	entity string

	// namespace es el prefijo principal de todas las métricas (e.g., "gridmarket").
	namespace string

	// ResultCounter contabiliza los resultados de operaciones (éxitos, fallos, etc.).
	ResultCounter metric.Int64Counter

	// DurationHistogram mide la distribución de tiempos de ejecución en segundos.
	DurationHistogram metric.Float64Histogram
}

// NewBaseMetrics crea una nueva instancia de BaseMetrics con los contadores e histogramas básicos.
// Cada bundle específico utilizará esta base y añadirá sus propias métricas especializadas.
//
// Parámetros:
//   - client: implementación de MetricsClient para registrar métricas
//   - namespace: espacio de nombres para agrupar métricas (ej. "gridmarket")
//   - entity: tipo de entidad que este bundle monitorea (ej. "order", "stream")
func NewBaseMetrics(client MetricsClient, namespace, entity string) *BaseMetrics {
	metricName := func(metricType string) string {
		return strings.Join([]string{namespace, entity, metricType}, ".")
	}

	return &BaseMetrics{
		client:    client,
		entity:    entity,
		namespace: namespace,
		ResultCounter: client.Counter(
			metricName("result"),
			"Results of operations for "+entity+" labeled by status, service, etc.",
		),
		DurationHistogram: client.Histogram(
			metricName("duration"),
			"Duration of operations for "+entity+" in seconds.",
		),
	}
}

// RecordResult incrementa el contador de resultados para un evento específico.
// Debe utilizarse para registrar el resultado de cualquier operación importante.
//
// Atributos comunes a incluir:
//   - semconv.Metrics.Status.String("success"/"error")
//   - semconv.Metrics.Action.String("create"/"cancel"/...)
//   - semconv.Metrics.Service.String("nombre-servicio")
func (bm *BaseMetrics) RecordResult(ctx context.Context, attrs ...attribute.KeyValue) {
	// Registrar vía el cliente adjunta automáticamente los atributos
	// Common + Metric del contexto.
	name := MetricName(bm.namespace, bm.entity, "result")
	bm.client.RecordCounter(ctx, name, 1, attrs...)
}

// StartDurationTimer mide la duración de una operación y retorna una función
// que debe llamarse al finalizar la operación para registrar el tiempo transcurrido.
//
// Ejemplo de uso:
//
//	done := metrics.StartDurationTimer(ctx,
//	    semconv.Metrics.Service.String("gridwatch"),
//	    semconv.Metrics.Action.String("create_order"),
//	)
//	// Realizar operación...
//	done() // Registra automáticamente la duración
func (bm *BaseMetrics) StartDurationTimer(ctx context.Context, attrs ...attribute.KeyValue) func() {
	start := time.Now()
	return func() {
		duration := time.Since(start).Seconds()
		name := MetricName(bm.namespace, bm.entity, "duration")
		bm.client.RecordHistogram(ctx, name, duration, attrs...)
	}
}

// MetricName genera un nombre de métrica con formato estándar <namespace>.<entity>.<metric_type>.
// Esta función debe usarse para mantener la consistencia en los nombres de todas las métricas.
//
// Parámetros:
//   - namespace: espacio de nombres general (ej. "gridmarket")
//   - entity: tipo de entidad (ej. "order", "trade", "stream")
//   - metricType: tipo específico de métrica (ej. "result", "duration", "events")
func MetricName(namespace, entity string, metricType string) string {
	return strings.Join([]string{namespace, entity, metricType}, ".")
}
