// Package semconv define convenciones semánticas para atributos OpenTelemetry
// utilizados en el sistema de telemetría.
//
// Este paquete contiene estructuras que representan convenciones semánticas
// para los dominios de logs, métricas y mercado eléctrico. Cada dominio
// tiene su propio conjunto de atributos predefinidos que siguen las mejores
// prácticas de OpenTelemetry y facilitan la correlación entre logs, métricas y trazas.
//
// Uso básico:
//
//	// Para logs
//	attrs := []attribute.KeyValue{
//	    semconv.Logs.Feature.String("Streaming"),
//	    semconv.Logs.Event.String("subscription_opened"),
//	}
//
//	// Para el dominio del mercado
//	marketAttrs := []attribute.KeyValue{
//	    semconv.Market.GridpoolID.Int64(123),
//	    semconv.Market.Side.String("BUY"),
//	    semconv.Market.DeliveryArea.String("DE"),
//	}
//
// Las convenciones definidas en este paquete permiten una instrumentación
// consistente en toda la aplicación y facilitan la observabilidad del sistema.
package semconv
