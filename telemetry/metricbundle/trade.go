package metricbundle

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// TradeMetrics representa métricas de trades ejecutados en el mercado
type TradeMetrics struct {
	*BaseMetrics
	// Si se necesitan métricas específicas adicionales, se añadirían aquí
}

// NewTradeMetrics inicializa un nuevo bundle de métricas para trades
func NewTradeMetrics(client MetricsClient) *TradeMetrics {
	// Creamos la base con namespace "gridmarket" y entity "trade"
	base := NewBaseMetrics(client, "gridmarket", "trade")

	return &TradeMetrics{
		BaseMetrics: base,
	}
}

// ----------------------------------------------------------------------------------
// Bundle global singleton con inicialización segura para concurrencia
// ----------------------------------------------------------------------------------

var (
	globalTradeMetrics   *TradeMetrics
	onceInitTradeMetrics sync.Once
)

// InitGlobalTradeBundle inicializa el bundle global para uso compartido
func InitGlobalTradeBundle(client MetricsClient) {
	onceInitTradeMetrics.Do(func() {
		globalTradeMetrics = NewTradeMetrics(client)
	})
}

// GetGlobalTradeMetrics retorna el bundle global ya inicializado
func GetGlobalTradeMetrics() *TradeMetrics {
	return globalTradeMetrics // nil si no inicializado (no-op seguro)
}

// ----------------------------------------------------------------------------------
// Métodos específicos para trades
// ----------------------------------------------------------------------------------

// AddDefaultTradeAttributes añade atributos comunes para métricas de trades
func AddDefaultTradeAttributes(deliveryArea, side, state string) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.Market.DeliveryArea.String(deliveryArea),
		semconv.Market.Side.String(side),
		semconv.Market.State.String(state),
	}
}

// ----------------------------------------------------------------------------------
// Helpers para casos de uso comunes
// ----------------------------------------------------------------------------------

// RecordTradeObserved registra un trade observado en un feed, propio o
// público, con su cantidad y precio como atributos de análisis.
func (tm *TradeMetrics) RecordTradeObserved(
	ctx context.Context,
	deliveryArea string,
	side string,
	state string,
	quantityMWh float64,
	price float64,
	additionalAttrs ...attribute.KeyValue,
) {
	// Combinar atributos por defecto con adicionales
	attrs := AddDefaultTradeAttributes(deliveryArea, side, state)
	attrs = append(attrs, additionalAttrs...)

	// Añadir cantidad y precio del trade
	attrs = append(attrs, semconv.Market.QuantityMWh.Float64(quantityMWh))
	attrs = append(attrs, semconv.Market.Price.Float64(price))

	// Añadir la acción realizada
	attrs = append(attrs, semconv.Metrics.Action.String("observe"))

	// Registrar en el contador de resultados
	tm.RecordResult(ctx, attrs...)
}

// RecordTradeBatch registra un lote de trades recibidos de una sola vez,
// por ejemplo el resultado de un list.
func (tm *TradeMetrics) RecordTradeBatch(
	ctx context.Context,
	count int64,
	additionalAttrs ...attribute.KeyValue,
) {
	attrs := append([]attribute.KeyValue{
		semconv.Metrics.Count.Int64(count),
		semconv.Metrics.Action.String("batch"),
	}, additionalAttrs...)

	name := MetricName(tm.namespace, tm.entity, "result")
	tm.client.RecordCounter(ctx, name, count, attrs...)
}
