package grpc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xKoRx/gridmarket/telemetry"
	"github.com/xKoRx/gridmarket/utils"
)

// authMetadataKey es la cabecera de metadata donde viaja la API key.
const authMetadataKey = "key"

// AuthUnaryClientInterceptor agrega la API key como metadata en cada
// llamada unary.
func AuthUnaryClientInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		ctx = metadata.AppendToOutgoingContext(ctx, authMetadataKey, apiKey)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// AuthStreamClientInterceptor agrega la API key como metadata al abrir
// cada stream.
func AuthStreamClientInterceptor(apiKey string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		ctx = metadata.AppendToOutgoingContext(ctx, authMetadataKey, apiKey)
		return streamer(ctx, desc, cc, method, opts...)
	}
}

// LoggingUnaryClientInterceptor interceptor de logging para llamadas unary.
//
// Registra cada llamada RPC con método, duración, y código de status.
func LoggingUnaryClientInterceptor(client *telemetry.Client) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()

		err := invoker(ctx, method, req, reply, cc, opts...)

		duration := time.Since(start)
		attrs := []attribute.KeyValue{
			attribute.String("rpc.method", method),
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.grpc.status_code", status.Code(err).String()),
			attribute.Float64("rpc.duration_ms", float64(duration.Milliseconds())),
		}

		if err != nil {
			client.Error(ctx, "trading API call failed", err, attrs...)
		} else {
			client.Debug(ctx, "trading API call succeeded", attrs...)
		}

		return err
	}
}

// LoggingStreamClientInterceptor interceptor de logging para la apertura
// de streams.
func LoggingStreamClientInterceptor(client *telemetry.Client) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		stream, err := streamer(ctx, desc, cc, method, opts...)

		attrs := []attribute.KeyValue{
			attribute.String("rpc.method", method),
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.type", "stream"),
		}

		if err != nil {
			client.Error(ctx, "trading API stream open failed", err, attrs...)
			return nil, err
		}

		client.Info(ctx, "trading API stream opened", attrs...)

		return stream, nil
	}
}

// TracingUnaryClientInterceptor propaga trace context en llamadas unary.
//
// Extrae trace_id del contexto y lo propaga via metadata.
func TracingUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if traceID := getTraceIDFromContext(ctx); traceID != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "trace-id", traceID)
		}

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// TracingStreamClientInterceptor propaga trace context al abrir streams.
func TracingStreamClientInterceptor() grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		if traceID := getTraceIDFromContext(ctx); traceID != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "trace-id", traceID)
		}

		return streamer(ctx, desc, cc, method, opts...)
	}
}

// ErrorHandlingUnaryClientInterceptor normaliza errores a status gRPC.
//
// Garantiza que todo error que sale del canal sea un status error, para
// que la clasificación por código siempre tenga algo que mapear.
func ErrorHandlingUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			if _, ok := status.FromError(err); !ok {
				err = status.Error(codes.Unknown, err.Error())
			}
		}
		return err
	}
}

// Helpers para trace_id

type contextKey string

const traceIDKey contextKey = "trace_id"

// getTraceIDFromContext extrae trace_id del contexto.
func getTraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// setTraceIDInContext establece trace_id en el contexto.
func setTraceIDInContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// SetTraceID establece trace_id en el contexto.
//
// Útil para correlacionar una cadena de operaciones sobre la misma orden.
//
// Example:
//
//	ctx = grpc.SetTraceID(ctx, orderTraceID)
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return setTraceIDInContext(ctx, traceID)
}

// GetTraceID obtiene trace_id del contexto.
func GetTraceID(ctx context.Context) string {
	return getTraceIDFromContext(ctx)
}

// GetOrGenerateTraceID obtiene trace_id del contexto o genera uno nuevo.
func GetOrGenerateTraceID(ctx context.Context) (context.Context, string) {
	traceID := getTraceIDFromContext(ctx)
	if traceID == "" {
		traceID = utils.GenerateUUIDv7()
		ctx = setTraceIDInContext(ctx, traceID)
	}
	return ctx, traceID
}
