// Package internal contiene la lógica interna de gridwatch.
//
// Gridwatch es el daemon de observación del mercado: se suscribe a los
// streams de la API de trading, anota cada trade en un journal local y
// opcionalmente lo persiste en PostgreSQL.
package internal

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"

	grpcSDK "github.com/xKoRx/gridmarket/grpc"
	"github.com/xKoRx/gridmarket/telemetry"
	"github.com/xKoRx/gridmarket/telemetry/metricbundle"
	"github.com/xKoRx/gridmarket/trading"
)

// Watcher representa el daemon gridwatch.
//
// Responsabilidades:
//   - Cliente tipado hacia la API de trading (streams de órdenes y trades)
//   - Journal local de trades observados (bbolt)
//   - Recorder opcional hacia PostgreSQL
//   - Telemetría (logs + métricas)
type Watcher struct {
	// Config
	config *Config

	// API de trading
	client *trading.Client

	// Persistencia
	journal  *TradeJournal
	recorder *TradeRecorder

	// Telemetría
	telemetry       *telemetry.Client
	orderMetrics    *metricbundle.OrderMetrics
	tradeMetrics    *metricbundle.TradeMetrics
	streamMetrics   *metricbundle.StreamMetrics
	postgresMetrics *metricbundle.PostgresMetrics

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Estado
	mu     sync.RWMutex
	closed bool
}

// New crea una nueva instancia de Watcher.
//
// Config se carga desde ETCD automáticamente.
//
// Example:
//
//	watcher, err := internal.New(ctx)
//	if err != nil {
//	    return err
//	}
//	defer watcher.Shutdown()
func New(ctx context.Context) (*Watcher, error) {
	// Crear contexto cancelable
	watcherCtx, cancel := context.WithCancel(ctx)

	// Cargar configuración desde ETCD
	config, err := LoadConfig(watcherCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to load config from ETCD: %w", err)
	}

	// Inicializar telemetría
	telClient, err := initTelemetry(watcherCtx, config)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}

	// Bundles de métricas compartidos
	metricbundle.InitGlobalOrderBundle(telClient)
	metricbundle.InitGlobalTradeBundle(telClient)
	metricbundle.InitGlobalStreamBundle(telClient)
	metricbundle.InitGlobalPostgresBundle(telClient)

	// Abrir journal local
	journal, err := OpenTradeJournal(config.JournalPath)
	if err != nil {
		cancel()
		_ = telClient.Shutdown(watcherCtx)
		return nil, fmt.Errorf("failed to open trade journal: %w", err)
	}

	// Abrir recorder si está habilitado. La conexión se verifica en Start.
	var recorder *TradeRecorder
	if config.PostgresEnabled {
		recorder, err = OpenTradeRecorder(config.PostgresDSN)
		if err != nil {
			cancel()
			_ = journal.Close()
			_ = telClient.Shutdown(watcherCtx)
			return nil, fmt.Errorf("failed to open trade recorder: %w", err)
		}
	}

	watcher := &Watcher{
		config:          config,
		journal:         journal,
		recorder:        recorder,
		telemetry:       telClient,
		orderMetrics:    metricbundle.GetGlobalOrderMetrics(),
		tradeMetrics:    metricbundle.GetGlobalTradeMetrics(),
		streamMetrics:   metricbundle.GetGlobalStreamMetrics(),
		postgresMetrics: metricbundle.GetGlobalPostgresMetrics(),
		ctx:             watcherCtx,
		cancel:          cancel,
	}

	return watcher, nil
}

// Start inicia el Watcher.
//
// Secuencia:
//  1. Conectar a la API de trading via gRPC
//  2. Verificar PostgreSQL si el recorder está habilitado
//  3. Iniciar un watch loop por stream habilitado
//
// Bloquea hasta que ctx se cancele o haya error fatal.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("watcher already closed")
	}
	w.mu.Unlock()

	w.logInfo("Gridwatch starting", map[string]interface{}{
		"api_address": w.config.APIAddress,
		"gridpool_id": w.config.GridpoolID,
		"version":     w.config.ServiceVersion,
	})

	tradeCount, _ := w.journal.TradeCount()
	publicCount, _ := w.journal.PublicTradeCount()
	w.logInfo("Trade journal opened", map[string]interface{}{
		"path":          w.config.JournalPath,
		"trades":        tradeCount,
		"public_trades": publicCount,
	})

	// 1. Conectar a la API de trading
	if err := w.connect(); err != nil {
		return err
	}

	// 2. Verificar PostgreSQL
	if w.recorder != nil {
		done := w.postgresMetrics.StartDBOpTimer(w.ctx, "ping")
		err := w.recorder.Ping(w.ctx)
		done()
		if err != nil {
			return fmt.Errorf("failed to reach postgres: %w", err)
		}
		w.logInfo("Trade recorder connected", nil)
	}

	// 3. Iniciar watch loops
	if w.config.PublicTradesEnabled {
		w.wg.Add(1)
		go w.watchPublicTrades()
	}
	if w.config.TradesEnabled {
		w.wg.Add(1)
		go w.watchGridpoolTrades()
	}
	if w.config.OrdersEnabled {
		w.wg.Add(1)
		go w.watchGridpoolOrders()
	}

	w.logInfo("Gridwatch started successfully", nil)

	// Esperar señal de shutdown
	<-w.ctx.Done()

	w.logInfo("Gridwatch shutting down", nil)
	return nil
}

// connect establece el canal gRPC y construye el cliente de trading.
func (w *Watcher) connect() error {
	w.logInfo("Connecting to trading API", map[string]interface{}{
		"address": w.config.APIAddress,
		"tls":     w.config.TLSEnabled,
	})

	channel := grpcSDK.DefaultClientConfig(w.config.APIAddress)
	channel.APIKey = w.config.APIKey
	channel.Insecure = !w.config.TLSEnabled
	channel.KeepAlive = &grpcSDK.KeepAliveConfig{
		Time:                w.config.KeepAliveTime,
		Timeout:             w.config.KeepAliveTimeout,
		PermitWithoutStream: w.config.PermitWithoutStream,
	}
	channel.UnaryInterceptors = []grpc.UnaryClientInterceptor{
		grpcSDK.LoggingUnaryClientInterceptor(w.telemetry),
	}
	channel.StreamInterceptors = []grpc.StreamClientInterceptor{
		grpcSDK.LoggingStreamClientInterceptor(w.telemetry),
	}

	config := trading.DefaultConfig(w.config.APIAddress)
	config.APIKey = w.config.APIKey
	config.Channel = channel

	client, err := trading.Connect(w.ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect to trading API: %w", err)
	}

	w.client = client
	w.logInfo("Connected to trading API", nil)
	return nil
}

// Shutdown detiene el Watcher gracefully.
func (w *Watcher) Shutdown() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.logInfo("Gridwatch shutdown initiated", nil)

	// 1. Cancelar contexto (termina streams y watch loops)
	w.cancel()

	// 2. Esperar watch loops (aún escriben al journal)
	w.wg.Wait()

	// 3. Cerrar cliente de trading
	if w.client != nil {
		_ = w.client.Close()
	}

	// 4. Cerrar persistencia
	if err := w.journal.Close(); err != nil {
		w.logError("Failed to close trade journal", err, nil)
	}
	if w.recorder != nil {
		if err := w.recorder.Close(); err != nil {
			w.logError("Failed to close trade recorder", err, nil)
		}
	}

	// 5. Shutdown telemetría
	shutdownCtx := context.Background()
	if err := w.telemetry.Shutdown(shutdownCtx); err != nil {
		w.logError("Failed to shutdown telemetry", err, nil)
	}

	w.logInfo("Gridwatch stopped", nil)
	return nil
}

// logInfo loggea un mensaje INFO.
func (w *Watcher) logInfo(message string, fields map[string]interface{}) {
	attrs := mapToAttrs(fields)
	w.telemetry.Info(w.ctx, message, attrs...)
}

// logError loggea un mensaje ERROR.
func (w *Watcher) logError(message string, err error, fields map[string]interface{}) {
	attrs := mapToAttrs(fields)
	w.telemetry.Error(w.ctx, message, err, attrs...)
}

// logWarn loggea un mensaje WARN.
func (w *Watcher) logWarn(message string, fields map[string]interface{}) {
	attrs := mapToAttrs(fields)
	w.telemetry.Warn(w.ctx, message, attrs...)
}
