// Package metricbundle proporciona una colección de bundles de métricas para los
// dominios de gridmarket: órdenes, trades, streams y persistencia.
//
// Cada bundle está diseñado para encapsular métricas específicas de su dominio y
// proporcionar una interfaz unificada para registrar métricas con atributos adecuados,
// siguiendo convenciones semánticas estandarizadas definidas en el paquete semconv.
//
// Estructura del paquete:
//
// - base.go: Define la estructura BaseMetrics y funcionalidad común para todos los bundles
// - order.go: Métricas para operaciones sobre órdenes del gridpool
// - trade.go: Métricas para trades ejecutados, propios y públicos
// - stream.go: Métricas para suscripciones server-streaming
// - postgres.go: Métricas de persistencia en PostgreSQL
//
// Convención de nombres de métricas:
//
// Todas las métricas siguen el formato <namespace>.<entity>.<metric_type>, por ejemplo:
//   - gridmarket.order.result
//   - gridmarket.stream.events
//   - gridmarket.postgres.duration
//
// Inicialización:
//
// Para utilizar los bundles de métricas, primero debe inicializarse el sistema de telemetría:
//
//	client, err := telemetry.New(ctx, "gridwatch", "production")
//	if err != nil {
//	    log.Fatal("Error inicializando telemetría:", err)
//	}
//
// Uso básico:
//
//	// Crear un bundle de métricas de órdenes sobre el cliente
//	orderMetrics := metricbundle.NewOrderMetrics(client)
//
//	// Registrar el resultado de una operación
//	orderMetrics.RecordOrderResult(ctx, "create", 123, true,
//	    semconv.Metrics.Service.String("gridwatch"),
//	)
//
//	// Registrar duración de operación
//	done := orderMetrics.StartOrderTimer(ctx, "create")
//	// ... realizar operación ...
//	done() // Registra la duración al llamar a done()
//
// Cada bundle incluye métodos específicos para su dominio que facilitan
// el registro de métricas con los atributos adecuados, manteniendo
// la coherencia y facilitando el análisis en sistemas de observabilidad.
package metricbundle
