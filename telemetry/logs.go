package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Los métodos de log combinan los atributos Common y Event presentes en
// el contexto con los del sitio de llamada, de modo que un componente
// pueda etiquetar una vez (AppendCommonAttrs) y cada log salga completo.

// Info registra un mensaje informativo
func (c *Client) Info(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}
	c.logger.InfoContext(ctx, msg, attrsToSlogArgs(mergedEventAttrs(ctx, attrs))...)
}

// Error registra un mensaje de error
func (c *Client) Error(ctx context.Context, msg string, err error, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}

	args := attrsToSlogArgs(mergedEventAttrs(ctx, attrs))
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	c.logger.ErrorContext(ctx, msg, args...)
}

// Warn registra un mensaje de advertencia
func (c *Client) Warn(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}
	c.logger.WarnContext(ctx, msg, attrsToSlogArgs(mergedEventAttrs(ctx, attrs))...)
}

// Debug registra un mensaje de debug
func (c *Client) Debug(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}
	c.logger.DebugContext(ctx, msg, attrsToSlogArgs(mergedEventAttrs(ctx, attrs))...)
}

// attrsToSlogArgs convierte atributos OTEL a argumentos slog
func attrsToSlogArgs(attrs []attribute.KeyValue) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, string(attr.Key), attr.Value.AsInterface())
	}
	return args
}
