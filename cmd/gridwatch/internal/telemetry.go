package internal

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridmarket/telemetry"
	"github.com/xKoRx/gridmarket/telemetry/semconv"
)

// initTelemetry inicializa el cliente de telemetría según la configuración
// cargada desde ETCD.
func initTelemetry(ctx context.Context, config *Config) (*telemetry.Client, error) {
	opts := []telemetry.Option{
		telemetry.WithVersion(config.ServiceVersion),
		telemetry.WithLogLevel(config.LogLevel),
		telemetry.WithLogFormat(config.LogFormat),
	}

	if config.OTLPEndpoint != "" {
		opts = append(opts, telemetry.WithOTLPEndpoint(config.OTLPEndpoint))
	}
	if config.MetricsEndpoint != "" {
		opts = append(opts, telemetry.WithMetricsEndpoint(config.MetricsEndpoint))
	}
	if !config.TracesEnabled {
		opts = append(opts, telemetry.WithTracesDisabled())
	}
	if !config.MetricsEnabled {
		opts = append(opts, telemetry.WithMetricsDisabled())
	}

	// Todos los logs y métricas del daemon salen etiquetados con el
	// componente y la instancia.
	opts = append(opts, telemetry.WithCommonAttributes(
		semconv.Market.Component.String(semconv.ComponentValues.Watcher),
		attribute.String("service.instance.id", config.InstanceID),
	))

	client, err := telemetry.New(
		ctx,
		config.ServiceName,
		config.Environment,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}

	return client, nil
}
