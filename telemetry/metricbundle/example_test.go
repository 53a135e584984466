package metricbundle_test

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xKoRx/gridmarket/telemetry/metricbundle"
	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// Esta función simula un cliente de métricas para ejemplos
// En un caso real, se usaría telemetry.New para obtener el cliente
func getExampleClient() metricbundle.MetricsClient {
	// Crear un mock del cliente para el ejemplo
	return &mockMetricsClient{}
}

// ExampleOrderMetrics_RecordOrderResult muestra cómo registrar métricas para una operación sobre órdenes
func ExampleOrderMetrics_RecordOrderResult() {
	// Obtener un cliente de métricas (en una aplicación real sería a través de telemetry.New)
	client := getExampleClient()

	// Crear un bundle de métricas de órdenes
	orderMetrics := metricbundle.NewOrderMetrics(client)

	// Registrar una creación exitosa
	ctx := context.Background()
	orderMetrics.RecordOrderResult(ctx, "create", 123, true,
		semconv.Metrics.Service.String("gridwatch"),
	)

	// También se puede registrar una operación fallida
	orderMetrics.RecordOrderResult(ctx, "cancel", 123, false,
		semconv.Market.ErrorCode.String("NOT_FOUND"),
	)

	fmt.Println("Order metrics recorded successfully")
	// Output: Order metrics recorded successfully
}

// ExampleBaseMetrics_StartDurationTimer muestra cómo medir y registrar la duración de una operación
func ExampleBaseMetrics_StartDurationTimer() {
	// Obtener un cliente de métricas
	client := getExampleClient()

	// Crear un bundle de métricas base
	baseMetrics := metricbundle.NewBaseMetrics(client, "gridmarket", "operation")

	// Iniciar un temporizador para medir la duración
	ctx := context.Background()
	done := baseMetrics.StartDurationTimer(ctx,
		semconv.Metrics.Service.String("gridwatch"),
		semconv.Metrics.Action.String("list_orders"),
	)

	// Simular alguna operación que tome tiempo
	time.Sleep(50 * time.Millisecond)

	// Finalizar la medición y registrar la duración
	done()

	fmt.Println("Duration metric recorded successfully")
	// Output: Duration metric recorded successfully
}

// ExampleMetricName muestra cómo generar nombres de métrica consistentes
func ExampleMetricName() {
	// Generar nombres de métrica con el formato estándar
	resultName := metricbundle.MetricName("gridmarket", "order", "result")
	eventsName := metricbundle.MetricName("gridmarket", "stream", "events")
	durationName := metricbundle.MetricName("gridmarket", "postgres", "duration")

	fmt.Println(resultName)
	fmt.Println(eventsName)
	fmt.Println(durationName)
	// Output:
	// gridmarket.order.result
	// gridmarket.stream.events
	// gridmarket.postgres.duration
}

// ExampleTradeMetrics_RecordTradeObserved muestra cómo registrar métricas para un trade observado
func ExampleTradeMetrics_RecordTradeObserved() {
	// Obtener un cliente de métricas (en una aplicación real sería a través de telemetry.New)
	client := getExampleClient()

	// Crear un bundle de métricas de trades
	tradeMetrics := metricbundle.NewTradeMetrics(client)

	// Registrar un trade público observado en el feed
	ctx := context.Background()
	tradeMetrics.RecordTradeObserved(ctx, "DE", "BUY", "ACTIVE", 0.1, 50.00,
		semconv.Metrics.Service.String("gridwatch"),
	)

	// Registrar un lote recibido por un list
	tradeMetrics.RecordTradeBatch(ctx, 25,
		semconv.Market.GridpoolID.Int64(123),
	)

	fmt.Println("Trade metrics recorded successfully")
	// Output: Trade metrics recorded successfully
}

// ExampleStreamMetrics_RecordStreamEvent muestra cómo registrar métricas de una suscripción
func ExampleStreamMetrics_RecordStreamEvent() {
	client := getExampleClient()
	sm := metricbundle.NewStreamMetrics(client)

	ctx := context.Background()
	sm.RecordStreamEvent(ctx, semconv.StreamValues.PublicTrades,
		semconv.Market.DeliveryArea.String("DE"),
	)

	// También se puede registrar el hueco entre eventos y los cortes
	sm.RecordEventGap(ctx, semconv.StreamValues.PublicTrades, 1.5)
	sm.RecordStreamInterrupted(ctx, semconv.StreamValues.Orders, "CONNECTION_LOST",
		attribute.Int("events_seen", 1240),
	)

	fmt.Println("Stream metrics recorded successfully")
	// Output: Stream metrics recorded successfully
}

// Mock simple del cliente de métricas para los ejemplos
type mockMetricsClient struct{}

func (m *mockMetricsClient) Counter(name, description string) metric.Int64Counter {
	return nil
}

func (m *mockMetricsClient) Histogram(name, description string) metric.Float64Histogram {
	return nil
}

func (m *mockMetricsClient) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
	// Simulación
}

func (m *mockMetricsClient) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
	// Simulación
}
