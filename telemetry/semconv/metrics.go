package semconv

import (
	"go.opentelemetry.io/otel/attribute"
)

// Metrics define las convenciones semánticas para atributos OpenTelemetry
// usados en la recolección y categorización de métricas del sistema.
//
// Proporciona un conjunto estandarizado de atributos para dimensionar y
// clasificar las métricas generadas, siguiendo mejores prácticas de
// observabilidad y permitiendo análisis detallados en herramientas como Prometheus y Grafana.
//
// Los atributos propios del mercado eléctrico (gridpool, área de entrega,
// lado, etc.) viven en Market; aquí solo están las dimensiones genéricas.
var Metrics struct {
	// Status indica el estado de la operación que se está midiendo.
	// Valores comunes: "ok", "error", "retry", "timeout", etc.
	Status attribute.Key

	// Result representa el resultado final de la operación.
	// Valores comunes: "success", "failure", "partial", etc.
	Result attribute.Key

	// Action identifica la acción que se realizó.
	// Valores comunes: "create", "update", "cancel", "list", etc.
	Action attribute.Key

	// Service identifica el servicio que genera la métrica.
	// Ejemplos: "gridwatch", "dispatch-bot", etc.
	Service attribute.Key

	// Component identifica el componente específico dentro del servicio.
	// Ejemplos: "client", "watcher", "recorder", etc.
	Component attribute.Key

	// Env identifica el entorno de ejecución.
	// Valores comunes: "development", "staging", "production", etc.
	Env attribute.Key

	// Region identifica la zona geográfica donde se ejecuta el servicio.
	// Ejemplos: "eu-central", "nordics", etc.
	Region attribute.Key

	// Instance identifica la instancia específica del servicio.
	// Ejemplos: nombre del pod, ID del host, etc.
	Instance attribute.Key

	// Interval representa el intervalo temporal de la métrica.
	// Valores comunes: "15m", "30m", "1h", etc.
	Interval attribute.Key

	// Size representa dimensiones de tamaño en la métrica.
	// Puede ser tamaño en bytes, cantidad de elementos, etc.
	Size attribute.Key

	// Duration representa una medida de tiempo, generalmente en segundos.
	Duration attribute.Key

	// Count representa un conteo simple de elementos o eventos.
	Count attribute.Key
}

func init() {
	// Inicialización de atributos de estado y resultado
	Metrics.Status = attribute.Key("status")
	Metrics.Result = attribute.Key("result")
	Metrics.Action = attribute.Key("action")

	// Inicialización de atributos de servicio
	Metrics.Service = attribute.Key("service")
	Metrics.Component = attribute.Key("component")

	// Inicialización de atributos de entorno
	Metrics.Env = attribute.Key("env")
	Metrics.Region = attribute.Key("region")
	Metrics.Instance = attribute.Key("instance")

	// Inicialización de atributos de temporalidad
	Metrics.Interval = attribute.Key("interval")

	// Inicialización de atributos de métricas específicas
	Metrics.Size = attribute.Key("size")
	Metrics.Duration = attribute.Key("duration")
	Metrics.Count = attribute.Key("count")
}
