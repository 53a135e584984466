package grpc

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/xKoRx/gridmarket/domain"
)

// ClientConfig configuración para el canal gRPC hacia la API de trading.
type ClientConfig struct {
	// Target dirección del servidor (ej: "grid.example.com:443")
	Target string

	// APIKey credencial de autenticación. Si no está vacía, viaja como
	// metadata en cada llamada.
	APIKey string

	// Timeout para conexión inicial
	DialTimeout time.Duration

	// KeepAlive configuración de keepalive. nil desactiva pings de cliente.
	KeepAlive *KeepAliveConfig

	// Insecure usar conexión sin TLS (solo entornos de desarrollo)
	Insecure bool

	// TLS configuración TLS explícita. nil usa la configuración estándar
	// del sistema cuando Insecure es false.
	TLS *tls.Config

	// MaxRetries número máximo de reintentos de conexión
	MaxRetries int

	// RetryBackoff backoff inicial entre reintentos
	RetryBackoff time.Duration

	// UnaryInterceptors interceptors para llamadas unary
	UnaryInterceptors []grpc.UnaryClientInterceptor

	// StreamInterceptors interceptors para streams
	StreamInterceptors []grpc.StreamClientInterceptor
}

// KeepAliveConfig configuración de keepalive.
type KeepAliveConfig struct {
	// Time intervalo de keepalive pings
	Time time.Duration

	// Timeout timeout para respuesta de ping
	Timeout time.Duration

	// PermitWithoutStream permitir pings sin streams activos
	PermitWithoutStream bool
}

// DefaultClientConfig retorna configuración por defecto: TLS habilitado y
// keepalive moderado, pensado para un servidor remoto detrás de WAN.
func DefaultClientConfig(target string) *ClientConfig {
	return &ClientConfig{
		Target:       target,
		DialTimeout:  10 * time.Second,
		Insecure:     false,
		MaxRetries:   3,
		RetryBackoff: 2 * time.Second,
		KeepAlive: &KeepAliveConfig{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		},
	}
}

// Client wrapper sobre grpc.ClientConn con reconexión y retry.
type Client struct {
	conn   *grpc.ClientConn
	config *ClientConfig
	target string
}

// NewClient crea un nuevo cliente gRPC y bloquea hasta conectar o agotar
// el DialTimeout.
//
// Example:
//
//	config := grpc.DefaultClientConfig("grid.example.com:443")
//	config.APIKey = os.Getenv("GRIDMARKET_API_KEY")
//	client, err := grpc.NewClient(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// Construir dial options
	opts := []grpc.DialOption{
		grpc.WithBlock(), // Bloquear hasta conectar
	}

	// Credentials
	switch {
	case config.Insecure:
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	case config.TLS != nil:
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(config.TLS)))
	default:
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
			MinVersion: tls.VersionTLS12,
		})))
	}

	// KeepAlive
	if config.KeepAlive != nil {
		kaParams := keepalive.ClientParameters{
			Time:                config.KeepAlive.Time,
			Timeout:             config.KeepAlive.Timeout,
			PermitWithoutStream: config.KeepAlive.PermitWithoutStream,
		}
		opts = append(opts, grpc.WithKeepaliveParams(kaParams))
	}

	// Interceptors. La API key se antepone para que las credenciales
	// viajen también en las llamadas que los demás interceptors registran.
	unary := config.UnaryInterceptors
	stream := config.StreamInterceptors
	if config.APIKey != "" {
		unary = append([]grpc.UnaryClientInterceptor{AuthUnaryClientInterceptor(config.APIKey)}, unary...)
		stream = append([]grpc.StreamClientInterceptor{AuthStreamClientInterceptor(config.APIKey)}, stream...)
	}
	if len(unary) > 0 {
		opts = append(opts, grpc.WithChainUnaryInterceptor(unary...))
	}
	if len(stream) > 0 {
		opts = append(opts, grpc.WithChainStreamInterceptor(stream...))
	}

	// Context con timeout para dial
	dialCtx := ctx
	if config.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, config.DialTimeout)
		defer cancel()
	}

	// Conectar
	conn, err := grpc.DialContext(dialCtx, config.Target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", config.Target, err)
	}

	return &Client{
		conn:   conn,
		config: config,
		target: config.Target,
	}, nil
}

// Conn retorna la conexión gRPC subyacente.
//
// Útil para construir el cliente de trading sobre el canal.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Close cierra la conexión.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Target retorna el target del cliente.
func (c *Client) Target() string {
	return c.target
}

// State retorna el estado de la conexión.
func (c *Client) State() connectivity.State {
	if c.conn == nil {
		return connectivity.Shutdown
	}
	return c.conn.GetState()
}

// WaitForReady espera a que la conexión esté lista.
//
// Example:
//
//	if err := client.WaitForReady(ctx, 30*time.Second); err != nil {
//	    return err
//	}
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	if c.conn == nil {
		return fmt.Errorf("connection is nil")
	}

	ctxWithTimeout := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctxWithTimeout, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Esperar a que el estado sea READY
	for {
		state := c.conn.GetState()
		if state == connectivity.Ready {
			return nil
		}

		if !c.conn.WaitForStateChange(ctxWithTimeout, state) {
			// Context cancelado o timeout
			return ctxWithTimeout.Err()
		}
	}
}

// IsReady indica si la conexión está lista.
func (c *Client) IsReady() bool {
	return c.State() == connectivity.Ready
}

// IsConnected indica si hay conexión (READY o IDLE).
func (c *Client) IsConnected() bool {
	state := c.State()
	return state == connectivity.Ready || state == connectivity.Idle
}

// Reconnect intenta reconectar si la conexión se perdió.
//
// Usa backoff exponencial según config, con techo de 30 segundos.
func (c *Client) Reconnect(ctx context.Context) error {
	if c.IsConnected() {
		return nil // Ya conectado
	}

	// Cerrar conexión anterior
	if c.conn != nil {
		_ = c.conn.Close()
	}

	var lastErr error
	backoff := c.config.RetryBackoff

	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		// Esperar backoff (excepto primera vez)
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}

			backoff = backoff * 2
			if backoff > 30*time.Second {
				backoff = 30 * time.Second
			}
		}

		newClient, err := NewClient(ctx, c.config)
		if err != nil {
			lastErr = err
			continue
		}

		c.conn = newClient.conn
		return nil
	}

	return fmt.Errorf("failed to reconnect after %d attempts: %w", c.config.MaxRetries, lastErr)
}

// WithRetry ejecuta una función con retry automático.
//
// Solo reintenta errores retriables según la taxonomía del dominio
// (conexión perdida, timeout, recursos agotados); los rechazos del
// servidor y la entrada inválida retornan de inmediato.
//
// Example:
//
//	err := client.WithRetry(ctx, func() error {
//	    _, err := trading.ListPublicTrades(ctx, filter)
//	    return err
//	})
func (c *Client) WithRetry(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		// Verificar conexión
		if !c.IsConnected() {
			if err := c.Reconnect(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		// Si el contexto fue cancelado, no reintentar
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !domain.IsRetryable(ErrorCodeOf(err)) {
			return err
		}

		// Esperar backoff
		if attempt < c.config.MaxRetries {
			select {
			case <-time.After(c.config.RetryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}
