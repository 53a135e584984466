package trading

import (
	"google.golang.org/grpc"

	grpcSDK "github.com/xKoRx/gridmarket/grpc"
)

// Config configuración del cliente de trading.
type Config struct {
	// Target dirección del servidor (ej: "grid.example.com:443").
	// Usado por Connect; NewClient lo ignora.
	Target string

	// APIKey credencial de autenticación. Usado por Connect.
	APIKey string

	// CallOptions opciones gRPC adicionales aplicadas a cada llamada.
	CallOptions []grpc.CallOption

	// Channel configuración del canal subyacente para Connect. nil usa
	// grpc.DefaultClientConfig(Target) con la APIKey de arriba.
	Channel *grpcSDK.ClientConfig
}

// DefaultConfig retorna configuración por defecto para un target.
//
// Example:
//
//	config := trading.DefaultConfig("grid.example.com:443")
//	config.APIKey = os.Getenv("GRIDMARKET_API_KEY")
func DefaultConfig(target string) *Config {
	return &Config{
		Target: target,
	}
}

// channelConfig arma la configuración del canal para Connect.
func (c *Config) channelConfig() *grpcSDK.ClientConfig {
	if c.Channel != nil {
		return c.Channel
	}
	channel := grpcSDK.DefaultClientConfig(c.Target)
	channel.APIKey = c.APIKey
	return channel
}
