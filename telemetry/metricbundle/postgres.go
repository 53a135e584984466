package metricbundle

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// PostgresMetrics representa métricas de persistencia en PostgreSQL
type PostgresMetrics struct {
	*BaseMetrics // gridmarket.postgres.*
}

// NewPostgresMetrics crea el bundle para PostgreSQL
func NewPostgresMetrics(client MetricsClient) *PostgresMetrics {
	base := NewBaseMetrics(client, "gridmarket", "postgres")
	return &PostgresMetrics{BaseMetrics: base}
}

// Singleton
var (
	globalPostgresMetrics   *PostgresMetrics
	onceInitPostgresMetrics sync.Once
)

// InitGlobalPostgresBundle inicializa el bundle global
func InitGlobalPostgresBundle(client MetricsClient) {
	onceInitPostgresMetrics.Do(func() {
		globalPostgresMetrics = NewPostgresMetrics(client)
	})
}

// GetGlobalPostgresMetrics retorna el bundle global
func GetGlobalPostgresMetrics() *PostgresMetrics {
	return globalPostgresMetrics // nil si no inicializado (no-op seguro)
}

// RecordRowsWritten registra filas insertadas o actualizadas en una operación
func (p *PostgresMetrics) RecordRowsWritten(ctx context.Context, table string, count int64, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{
		semconv.Metrics.Action.String("write"),
		semconv.Metrics.Count.Int64(count),
		attribute.String("table", table),
	}
	base = append(base, attrs...)

	name := MetricName(p.namespace, p.entity, "result")
	p.client.RecordCounter(ctx, name, count, base...)
}

// StartDBOpTimer mide duración de una operación de BD
func (p *PostgresMetrics) StartDBOpTimer(ctx context.Context, op string, attrs ...attribute.KeyValue) func() {
	base := []attribute.KeyValue{semconv.Metrics.Action.String(op)}
	base = append(base, attrs...)
	return p.StartDurationTimer(ctx, base...)
}
