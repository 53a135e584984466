package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestAuthUnaryClientInterceptorAddsAPIKey(t *testing.T) {
	interceptor := AuthUnaryClientInterceptor("secret-key")

	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(context.Background(), "/gridmarket.v1.ElectricityTradingService/GetGridpoolOrder",
		nil, nil, nil, invoker)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"secret-key"}, captured.Get(authMetadataKey))
}

func TestAuthStreamClientInterceptorAddsAPIKey(t *testing.T) {
	interceptor := AuthStreamClientInterceptor("secret-key")

	var captured metadata.MD
	streamer := func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil, nil
	}

	_, err := interceptor(context.Background(), &grpc.StreamDesc{ServerStreams: true}, nil,
		"/gridmarket.v1.ElectricityTradingService/ReceivePublicTradesStream", streamer)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"secret-key"}, captured.Get(authMetadataKey))
}

func TestTracingUnaryClientInterceptorPropagatesTraceID(t *testing.T) {
	interceptor := TracingUnaryClientInterceptor()

	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	ctx := SetTraceID(context.Background(), "trace-abc")
	err := interceptor(ctx, "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"trace-abc"}, captured.Get("trace-id"))

	// Sin trace_id en contexto no se agrega metadata.
	captured = nil
	err = interceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.Empty(t, captured.Get("trace-id"))
}

func TestGetOrGenerateTraceID(t *testing.T) {
	ctx, traceID := GetOrGenerateTraceID(context.Background())
	assert.NotEmpty(t, traceID, "sin trace_id previo se genera uno")
	assert.Equal(t, traceID, GetTraceID(ctx))

	// Con trace_id existente se reusa.
	ctx2, traceID2 := GetOrGenerateTraceID(ctx)
	assert.Equal(t, traceID, traceID2)
	assert.Equal(t, traceID, GetTraceID(ctx2))
}

func TestDefaultClientConfig(t *testing.T) {
	config := DefaultClientConfig("grid.example.com:443")

	assert.Equal(t, "grid.example.com:443", config.Target)
	assert.False(t, config.Insecure, "el default es TLS habilitado")
	assert.Empty(t, config.APIKey)
	assert.Equal(t, 3, config.MaxRetries)
	require.NotNil(t, config.KeepAlive)
	assert.True(t, config.KeepAlive.PermitWithoutStream)
}
