package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// contextKey es el tipo para las claves de contexto
type contextKey string

const (
	commonAttrsKey contextKey = "telemetry_common_attrs"
	eventAttrsKey  contextKey = "telemetry_event_attrs"
	metricAttrsKey contextKey = "telemetry_metric_attrs"
)

// AppendCommonAttrs añade atributos comunes al contexto (para logs, métricas y trazas)
func AppendCommonAttrs(ctx context.Context, attrs ...attribute.KeyValue) context.Context {
	return appendAttrs(ctx, commonAttrsKey, attrs...)
}

// AppendEventAttrs añade atributos específicos para logs y spans
func AppendEventAttrs(ctx context.Context, attrs ...attribute.KeyValue) context.Context {
	return appendAttrs(ctx, eventAttrsKey, attrs...)
}

// AppendMetricAttrs añade atributos específicos para métricas
func AppendMetricAttrs(ctx context.Context, attrs ...attribute.KeyValue) context.Context {
	return appendAttrs(ctx, metricAttrsKey, attrs...)
}

// GetCommonAttrs extrae atributos comunes del contexto
func GetCommonAttrs(ctx context.Context) []attribute.KeyValue {
	return getAttrs(ctx, commonAttrsKey)
}

// GetEventAttrs extrae atributos de eventos del contexto
func GetEventAttrs(ctx context.Context) []attribute.KeyValue {
	return getAttrs(ctx, eventAttrsKey)
}

// GetMetricAttrs extrae atributos de métricas del contexto
func GetMetricAttrs(ctx context.Context) []attribute.KeyValue {
	return getAttrs(ctx, metricAttrsKey)
}

func appendAttrs(ctx context.Context, key contextKey, attrs ...attribute.KeyValue) context.Context {
	existing := getAttrs(ctx, key)

	// Copia completa: dos ramas derivadas del mismo contexto no deben
	// compartir el backing array.
	merged := make([]attribute.KeyValue, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, key, merged)
}

func getAttrs(ctx context.Context, key contextKey) []attribute.KeyValue {
	attrs, ok := ctx.Value(key).([]attribute.KeyValue)
	if !ok {
		return nil
	}
	return attrs
}

// mergedEventAttrs combina los atributos Common y Event del contexto con
// los del sitio de llamada. Los del sitio van al final; en claves
// repetidas slog conserva la última aparición.
func mergedEventAttrs(ctx context.Context, attrs []attribute.KeyValue) []attribute.KeyValue {
	return mergeAttrs(GetCommonAttrs(ctx), GetEventAttrs(ctx), attrs)
}

// mergedMetricAttrs combina los atributos Common y Metric del contexto
// con los del sitio de llamada.
func mergedMetricAttrs(ctx context.Context, attrs []attribute.KeyValue) []attribute.KeyValue {
	return mergeAttrs(GetCommonAttrs(ctx), GetMetricAttrs(ctx), attrs)
}

func mergeAttrs(groups ...[]attribute.KeyValue) []attribute.KeyValue {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	if total == 0 {
		return nil
	}

	merged := make([]attribute.KeyValue, 0, total)
	for _, group := range groups {
		merged = append(merged, group...)
	}
	return merged
}
