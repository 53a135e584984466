// Package telemetry proporciona observabilidad completa para gridmarket mediante los tres pilares:
//
// 1. Logs: Registro estructurado JSON (o pretty para consola) vía slog
// 2. Métricas: OpenTelemetry exportables por OTLP
// 3. Trazas: Trazado distribuido con OpenTelemetry
//
// Uso básico:
//
//	import (
//	    "context"
//	    "github.com/xKoRx/gridmarket/telemetry"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    // Inicializar telemetría
//	    client, err := telemetry.New(ctx, "gridwatch", "production")
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer client.Shutdown(ctx)
//
//	    // Registrar logs
//	    client.Info(ctx, "order placed")
//
//	    // Crear span
//	    ctx, span := client.StartSpan(ctx, "create_order")
//	    defer span.End()
//
//	    // Registrar métricas
//	    client.RecordCounter(ctx, "gridmarket.order.result", 1)
//	}
//
// # Atributos por contexto
//
// AppendCommonAttrs, AppendEventAttrs y AppendMetricAttrs etiquetan el
// contexto una vez; los métodos de log, métricas y spans adjuntan esos
// atributos automáticamente en cada registro.
//
//	ctx = telemetry.AppendCommonAttrs(ctx,
//	    semconv.Market.GridpoolID.Int64(123),
//	)
//	client.Info(ctx, "subscription opened") // lleva gridmarket.gridpool_id=123
package telemetry
