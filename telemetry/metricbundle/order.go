package metricbundle

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// OrderMetrics representa métricas de operaciones sobre órdenes del gridpool
type OrderMetrics struct {
	*BaseMetrics
	// Si se necesitan métricas específicas adicionales, se añadirían aquí
}

// NewOrderMetrics inicializa un nuevo bundle de métricas para órdenes
func NewOrderMetrics(client MetricsClient) *OrderMetrics {
	// Creamos la base con namespace "gridmarket" y entity "order"
	base := NewBaseMetrics(client, "gridmarket", "order")

	return &OrderMetrics{
		BaseMetrics: base,
	}
}

// ----------------------------------------------------------------------------------
// Bundle global singleton con inicialización segura para concurrencia
// ----------------------------------------------------------------------------------

var (
	globalOrderMetrics   *OrderMetrics
	onceInitOrderMetrics sync.Once
)

// InitGlobalOrderBundle inicializa el bundle global para uso compartido
func InitGlobalOrderBundle(client MetricsClient) {
	onceInitOrderMetrics.Do(func() {
		globalOrderMetrics = NewOrderMetrics(client)
	})
}

// GetGlobalOrderMetrics retorna el bundle global ya inicializado
func GetGlobalOrderMetrics() *OrderMetrics {
	return globalOrderMetrics // nil si no inicializado (no-op seguro)
}

// ----------------------------------------------------------------------------------
// Helpers para casos de uso comunes
// ----------------------------------------------------------------------------------

// RecordOrderResult registra el resultado de una operación sobre una orden
// (create, update, cancel, cancel_all, get, list).
func (om *OrderMetrics) RecordOrderResult(
	ctx context.Context,
	action string,
	gridpoolID uint64,
	success bool,
	additionalAttrs ...attribute.KeyValue,
) {
	status := "success"
	if !success {
		status = "error"
	}

	attrs := []attribute.KeyValue{
		semconv.Market.GridpoolID.Int64(int64(gridpoolID)),
		semconv.Metrics.Action.String(action),
		semconv.Metrics.Status.String(status),
	}
	attrs = append(attrs, additionalAttrs...)

	om.RecordResult(ctx, attrs...)
}

// StartOrderTimer mide la duración de una operación sobre órdenes.
// Retorna la función que registra el tiempo transcurrido al llamarla.
func (om *OrderMetrics) StartOrderTimer(
	ctx context.Context,
	action string,
	additionalAttrs ...attribute.KeyValue,
) func() {
	attrs := []attribute.KeyValue{
		semconv.Metrics.Action.String(action),
	}
	attrs = append(attrs, additionalAttrs...)

	return om.StartDurationTimer(ctx, attrs...)
}

// RecordOrderStateChange registra un cambio de estado observado en el
// stream de órdenes del gridpool.
func (om *OrderMetrics) RecordOrderStateChange(
	ctx context.Context,
	gridpoolID, orderID uint64,
	state string,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := []attribute.KeyValue{
		semconv.Market.GridpoolID.Int64(int64(gridpoolID)),
		semconv.Market.OrderID.Int64(int64(orderID)),
		semconv.Market.State.String(state),
		semconv.Metrics.Action.String("state_change"),
	}
	attrs = append(attrs, additionalAttrs...)

	om.RecordResult(ctx, attrs...)
}
