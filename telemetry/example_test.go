package telemetry_test

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridmarket/telemetry"
)

// ExampleNew demuestra cómo crear y usar el cliente de telemetría
func ExampleNew() {
	ctx := context.Background()

	// Crear cliente
	client, err := telemetry.New(ctx, "gridwatch-example", "development",
		telemetry.WithVersion("0.0.1"),
		telemetry.WithOTLPEndpoint("localhost:4317"),
		telemetry.WithLogLevel("ERROR"),
	)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = client.Shutdown(ctx)
	}()

	// Añadir atributos comunes al contexto
	ctx = telemetry.AppendCommonAttrs(ctx,
		attribute.String("component", "watcher"),
	)

	// Registrar logs
	client.Info(ctx, "Starting public trade tail",
		attribute.String("delivery_area", "DE"),
	)

	// Crear span para trazado
	ctx, span := client.StartSpan(ctx, "tail_public_trades")
	defer span.End()

	// Registrar métrica
	start := time.Now()
	// ... operación ...
	latency := time.Since(start).Milliseconds()
	client.RecordLatency(ctx, "trade.tail", float64(latency),
		attribute.String("result", "success"),
	)

	fmt.Println("Telemetry example completed")
	// Output: Telemetry example completed
}

// ExampleClient_RecordCounter demuestra el uso de contadores
func ExampleClient_RecordCounter() {
	ctx := context.Background()
	client, err := telemetry.New(ctx, "gridwatch-test", "test")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = client.Shutdown(ctx)
	}()

	// Registrar evento
	client.RecordCounter(ctx, "gridmarket.order.result", 1,
		attribute.Int64("gridpool_id", 123),
		attribute.String("status", "success"),
	)

	fmt.Println("Counter recorded")
	// Output: Counter recorded
}
