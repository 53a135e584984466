package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig("development", "host01")

	assert.True(t, cfg.OrdersEnabled)
	assert.True(t, cfg.TradesEnabled)
	assert.True(t, cfg.PublicTradesEnabled)
	assert.Equal(t, "./gridwatch.db", cfg.JournalPath)
	assert.Equal(t, 60*time.Second, cfg.KeepAliveTime)
	assert.Equal(t, 20*time.Second, cfg.KeepAliveTimeout)
	assert.False(t, cfg.PermitWithoutStream)
	assert.Equal(t, 500*time.Millisecond, cfg.ReconnectBackoffInitial)
	assert.Equal(t, 30*time.Second, cfg.ReconnectBackoffMax)
	assert.False(t, cfg.PostgresEnabled)
	assert.Equal(t, "gridwatch", cfg.ServiceName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.TracesEnabled)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "gridwatch_host01", cfg.InstanceID)
}

// validTestConfig retorna la configuración mínima que pasa validate.
func validTestConfig() *Config {
	cfg := defaultConfig("development", "host01")
	cfg.APIAddress = "grid.example.com:443"
	cfg.GridpoolID = 123
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "complete config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing api address",
			mutate:  func(c *Config) { c.APIAddress = "" },
			wantErr: "endpoints/api_addr",
		},
		{
			name: "all streams disabled",
			mutate: func(c *Config) {
				c.OrdersEnabled = false
				c.TradesEnabled = false
				c.PublicTradesEnabled = false
			},
			wantErr: "no streams enabled",
		},
		{
			name:    "gridpool required for own streams",
			mutate:  func(c *Config) { c.GridpoolID = 0 },
			wantErr: "watch/gridpool_id",
		},
		{
			name: "public feed alone needs no gridpool",
			mutate: func(c *Config) {
				c.GridpoolID = 0
				c.OrdersEnabled = false
				c.TradesEnabled = false
			},
		},
		{
			name:    "postgres enabled without dsn",
			mutate:  func(c *Config) { c.PostgresEnabled = true },
			wantErr: "postgres/dsn",
		},
		{
			name: "postgres enabled with dsn",
			mutate: func(c *Config) {
				c.PostgresEnabled = true
				c.PostgresDSN = "postgres://gridwatch@localhost/gridmarket?sslmode=disable"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
