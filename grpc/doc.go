// Package grpc provee el canal de comunicación hacia la API de trading.
//
// Este paquete gestiona la conexión gRPC: credenciales TLS, API key,
// keepalive, reconexión con backoff, y los interceptors de telemetría.
// No conoce el dominio de órdenes; solo entrega un canal listo para que
// el paquete trading lo use.
//
// # Cliente gRPC
//
// Crear un canal autenticado con reconexión automática:
//
//	config := grpc.DefaultClientConfig("grid.example.com:443")
//	config.APIKey = os.Getenv("GRIDMARKET_API_KEY")
//	client, err := grpc.NewClient(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// Construir el cliente de trading sobre el canal
//	trading := trading.NewClient(client.Conn(), trading.DefaultConfig())
//
// # Autenticación
//
// Cuando APIKey no está vacía, cada llamada y cada stream llevan la
// credencial como metadata. No hace falta registrar nada más:
//
//	config.APIKey = "mi-api-key"
//
// # Interceptors
//
// Agregar telemetría y tracing:
//
//	config.UnaryInterceptors = []grpc.UnaryClientInterceptor{
//	    grpc.LoggingUnaryClientInterceptor(telemetryClient),
//	    grpc.TracingUnaryClientInterceptor(),
//	}
//	config.StreamInterceptors = []grpc.StreamClientInterceptor{
//	    grpc.LoggingStreamClientInterceptor(telemetryClient),
//	    grpc.TracingStreamClientInterceptor(),
//	}
//
// # Clasificación de Errores
//
// Los errores de transporte se clasifican en la taxonomía del dominio con
// ErrorCodeOf. UNAVAILABLE y ABORTED cuentan como conexión perdida,
// DEADLINE_EXCEEDED como timeout, y así con el resto:
//
//	if domain.IsRetryable(grpc.ErrorCodeOf(err)) {
//	    // reintentar
//	}
//
// # Reconnection
//
// El cliente maneja reconnection con backoff exponencial:
//
//	err := client.WithRetry(ctx, func() error {
//	    _, err := trading.ListPublicTrades(ctx, filter)
//	    return err
//	})
//
//	// O reconectar manualmente
//	if !client.IsConnected() {
//	    if err := client.Reconnect(ctx); err != nil {
//	        return err
//	    }
//	}
//
// WithRetry solo reintenta errores retriables; un rechazo del servidor o
// entrada inválida retorna de inmediato.
//
// # KeepAlive
//
// Configurar keepalive para detectar conexiones perdidas. Con servidores
// sensibles a pings (ENHANCE_YOUR_CALM), asignar nil para desactivarlos:
//
//	config.KeepAlive = &grpc.KeepAliveConfig{
//	    Time:                30 * time.Second,
//	    Timeout:             10 * time.Second,
//	    PermitWithoutStream: true,
//	}
//
// # Trace ID Propagation
//
// Propagar trace_id a través de llamadas relacionadas:
//
//	ctx, traceID := grpc.GetOrGenerateTraceID(ctx)
//	// trace-id viaja en metadata con TracingUnaryClientInterceptor
//
// # Referencias
//
// - google.golang.org/grpc: Implementación gRPC
// - gridmarket/trading: Cliente de la API sobre este canal
// - gridmarket/telemetry: Integración de observabilidad
package grpc
