package internal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/xKoRx/gridmarket/etcd"
)

// Config configuración de gridwatch.
//
// Cargada desde ETCD en namespace gridmarket/{environment}.
type Config struct {
	// API de trading
	APIAddress string // endpoints/api_addr
	APIKey     string // api/key
	TLSEnabled bool   // api/tls_enabled

	// Suscripciones
	GridpoolID          uint64 // watch/gridpool_id
	DeliveryArea        string // watch/delivery_area (código EIC, filtra órdenes y trades propios)
	OrdersEnabled       bool   // watch/orders_enabled
	TradesEnabled       bool   // watch/trades_enabled
	PublicTradesEnabled bool   // watch/public_trades_enabled

	// Journal local (bbolt)
	JournalPath string // journal/path

	// gRPC KeepAlive cliente
	KeepAliveTime       time.Duration // grpc/client_keepalive/time_s
	KeepAliveTimeout    time.Duration // grpc/client_keepalive/timeout_s
	PermitWithoutStream bool          // grpc/client_keepalive/permit_without_stream

	// Reconexión de streams
	ReconnectBackoffInitial time.Duration // reconnect/backoff_initial_ms
	ReconnectBackoffMax     time.Duration // reconnect/backoff_max_ms

	// PostgreSQL (recorder)
	PostgresEnabled bool   // postgres/enabled
	PostgresDSN     string // postgres/dsn

	// Telemetry
	ServiceName     string // telemetry/service_name
	ServiceVersion  string // telemetry/service_version
	Environment     string // telemetry/environment
	OTLPEndpoint    string // endpoints/otel/otlp_endpoint
	MetricsEndpoint string // endpoints/otel/metrics_endpoint
	LogLevel        string // telemetry/log_level (INFO, DEBUG, WARN, ERROR)
	LogFormat       string // telemetry/log_format (json o pretty)
	TracesEnabled   bool   // telemetry/traces_enabled
	MetricsEnabled  bool   // telemetry/metrics_enabled

	// InstanceID identifica esta instancia de gridwatch (persistente por host)
	InstanceID string
}

// defaultConfig retorna la configuración por defecto para un environment.
// Cada campo puede sobrescribirse desde ETCD.
func defaultConfig(env, hostKey string) *Config {
	return &Config{
		OrdersEnabled:           true,
		TradesEnabled:           true,
		PublicTradesEnabled:     true,
		JournalPath:             "./gridwatch.db",
		KeepAliveTime:           60 * time.Second,
		KeepAliveTimeout:        20 * time.Second,
		PermitWithoutStream:     false,
		ReconnectBackoffInitial: 500 * time.Millisecond,
		ReconnectBackoffMax:     30 * time.Second,
		PostgresEnabled:         false,
		ServiceName:             "gridwatch",
		ServiceVersion:          "0.1.0",
		Environment:             env,
		LogLevel:                "INFO",
		LogFormat:               "json",
		TracesEnabled:           true,
		MetricsEnabled:          true,
		InstanceID:              fmt.Sprintf("gridwatch_%s", hostKey),
	}
}

// validate verifica la configuración mínima requerida.
func (c *Config) validate() error {
	if c.APIAddress == "" {
		return fmt.Errorf("endpoints/api_addr not configured in ETCD")
	}
	if !c.OrdersEnabled && !c.TradesEnabled && !c.PublicTradesEnabled {
		return fmt.Errorf("no streams enabled: set watch/orders_enabled, watch/trades_enabled or watch/public_trades_enabled")
	}
	if (c.OrdersEnabled || c.TradesEnabled) && c.GridpoolID == 0 {
		return fmt.Errorf("watch/gridpool_id not configured in ETCD")
	}
	if c.PostgresEnabled && c.PostgresDSN == "" {
		return fmt.Errorf("postgres/dsn not configured in ETCD")
	}
	return nil
}

// LoadConfig carga configuración desde ETCD.
//
// Environment se determina desde variable de entorno ENV (default: development).
//
// Uso:
//
//	cfg, err := internal.LoadConfig(ctx)
//	if err != nil {
//	    return err
//	}
func LoadConfig(ctx context.Context) (*Config, error) {
	// Obtener environment desde ENV
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	// Obtener HOST_KEY para instance_id
	hostKey := os.Getenv("HOST_KEY")
	if hostKey == "" {
		// Fallback: usar hostname
		if hostname, err := os.Hostname(); err == nil {
			hostKey = hostname
		} else {
			hostKey = "unknown"
		}
	}

	// Crear cliente ETCD para app=gridmarket, env={development|production}
	etcdClient, err := etcd.New(
		etcd.WithApp("gridmarket"),
		etcd.WithEnv(env),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ETCD client: %w", err)
	}
	defer etcdClient.Close()

	cfg := defaultConfig(env, hostKey)

	// Cargar endpoints
	if val, err := etcdClient.GetVarWithDefault(ctx, "endpoints/api_addr", ""); err == nil && val != "" {
		cfg.APIAddress = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "endpoints/otel/otlp_endpoint", ""); err == nil && val != "" {
		cfg.OTLPEndpoint = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "endpoints/otel/metrics_endpoint", ""); err == nil && val != "" {
		cfg.MetricsEndpoint = val
	}

	// Cargar API de trading
	if val, err := etcdClient.GetVarWithDefault(ctx, "api/key", ""); err == nil && val != "" {
		cfg.APIKey = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "api/tls_enabled", cfg.TLSEnabled); err == nil {
		cfg.TLSEnabled = val
	}

	// Cargar suscripciones
	if val, err := etcdClient.GetVarUint64WithDefault(ctx, "watch/gridpool_id", 0); err == nil && val != 0 {
		cfg.GridpoolID = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "watch/delivery_area", ""); err == nil && val != "" {
		cfg.DeliveryArea = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "watch/orders_enabled", cfg.OrdersEnabled); err == nil {
		cfg.OrdersEnabled = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "watch/trades_enabled", cfg.TradesEnabled); err == nil {
		cfg.TradesEnabled = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "watch/public_trades_enabled", cfg.PublicTradesEnabled); err == nil {
		cfg.PublicTradesEnabled = val
	}

	// Cargar journal
	if val, err := etcdClient.GetVarWithDefault(ctx, "journal/path", ""); err == nil && val != "" {
		cfg.JournalPath = val
	}

	// Cargar gRPC KeepAlive cliente (claves en segundos)
	if val, err := etcdClient.GetVarIntWithDefault(ctx, "grpc/client_keepalive/time_s", 0); err == nil && val > 0 {
		cfg.KeepAliveTime = time.Duration(val) * time.Second
	}
	if val, err := etcdClient.GetVarIntWithDefault(ctx, "grpc/client_keepalive/timeout_s", 0); err == nil && val > 0 {
		cfg.KeepAliveTimeout = time.Duration(val) * time.Second
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "grpc/client_keepalive/permit_without_stream", cfg.PermitWithoutStream); err == nil {
		cfg.PermitWithoutStream = val
	}

	// Cargar reconexión de streams (claves en milisegundos)
	if val, err := etcdClient.GetVarDurationWithDefault(ctx, "reconnect/backoff_initial_ms", cfg.ReconnectBackoffInitial); err == nil && val > 0 {
		cfg.ReconnectBackoffInitial = val
	}
	if val, err := etcdClient.GetVarDurationWithDefault(ctx, "reconnect/backoff_max_ms", cfg.ReconnectBackoffMax); err == nil && val > 0 {
		cfg.ReconnectBackoffMax = val
	}

	// Cargar PostgreSQL
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "postgres/enabled", cfg.PostgresEnabled); err == nil {
		cfg.PostgresEnabled = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "postgres/dsn", ""); err == nil && val != "" {
		cfg.PostgresDSN = val
	}

	// Cargar Telemetry
	if val, err := etcdClient.GetVarWithDefault(ctx, "telemetry/service_name", ""); err == nil && val != "" {
		cfg.ServiceName = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "telemetry/service_version", ""); err == nil && val != "" {
		cfg.ServiceVersion = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "telemetry/environment", ""); err == nil && val != "" {
		cfg.Environment = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "telemetry/log_level", ""); err == nil && val != "" {
		cfg.LogLevel = val
	}
	if val, err := etcdClient.GetVarWithDefault(ctx, "telemetry/log_format", ""); err == nil && val != "" {
		cfg.LogFormat = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "telemetry/traces_enabled", cfg.TracesEnabled); err == nil {
		cfg.TracesEnabled = val
	}
	if val, err := etcdClient.GetVarBoolWithDefault(ctx, "telemetry/metrics_enabled", cfg.MetricsEnabled); err == nil {
		cfg.MetricsEnabled = val
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
