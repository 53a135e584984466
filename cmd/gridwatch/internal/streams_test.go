package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xKoRx/gridmarket/domain"
	"github.com/xKoRx/gridmarket/telemetry"
	"github.com/xKoRx/gridmarket/telemetry/metricbundle"
)

// newOfflineWatcher arma un Watcher sin conexión: telemetría con exporters
// deshabilitados, journal real en un directorio temporal y sin recorder.
func newOfflineWatcher(t *testing.T) *Watcher {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	telClient, err := telemetry.New(ctx, "gridwatch-test", "test",
		telemetry.WithLogsDisabled(),
		telemetry.WithMetricsDisabled(),
		telemetry.WithTracesDisabled(),
	)
	require.NoError(t, err)

	journal, err := OpenTradeJournal(filepath.Join(t.TempDir(), "gridwatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })

	cfg := defaultConfig("test", "host01")
	cfg.APIAddress = "grid.example.com:443"
	cfg.GridpoolID = 123

	return &Watcher{
		config:          cfg,
		journal:         journal,
		telemetry:       telClient,
		orderMetrics:    metricbundle.NewOrderMetrics(telClient),
		tradeMetrics:    metricbundle.NewTradeMetrics(telClient),
		streamMetrics:   metricbundle.NewStreamMetrics(telClient),
		postgresMetrics: metricbundle.NewPostgresMetrics(telClient),
		ctx:             ctx,
		cancel:          cancel,
	}
}

func publicTradeFixture(t *testing.T, id uint64, state domain.TradeState) domain.PublicTrade {
	t.Helper()
	buyArea, err := domain.NewDeliveryArea("10YDE-EON------1", domain.EnergyMarketCodeTypeEuropeEIC)
	require.NoError(t, err)
	sellArea, err := domain.NewDeliveryArea("10YDE-RWENET---I", domain.EnergyMarketCodeTypeEuropeEIC)
	require.NoError(t, err)
	period, err := domain.NewDeliveryPeriod(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), 15*time.Minute)
	require.NoError(t, err)

	return domain.PublicTrade{
		ID:               id,
		BuyDeliveryArea:  buyArea,
		SellDeliveryArea: sellArea,
		DeliveryPeriod:   period,
		ExecutionTime:    time.Date(2023, 1, 1, 11, 45, 0, 0, time.UTC),
		Price:            domain.Price{Amount: decimal.RequireFromString("50.5"), Currency: domain.CurrencyEUR},
		Quantity:         domain.Energy{MWh: decimal.RequireFromString("0.1")},
		State:            state,
	}
}

func gridpoolTradeFixture(t *testing.T, id uint64, state domain.TradeState) domain.Trade {
	t.Helper()
	area, err := domain.NewDeliveryArea("10YDE-EON------1", domain.EnergyMarketCodeTypeEuropeEIC)
	require.NoError(t, err)
	period, err := domain.NewDeliveryPeriod(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), 15*time.Minute)
	require.NoError(t, err)

	return domain.Trade{
		ID:             id,
		OrderID:        42,
		Side:           domain.MarketSideBuy,
		ExecutionTime:  time.Date(2023, 1, 1, 11, 45, 0, 0, time.UTC),
		DeliveryArea:   area,
		DeliveryPeriod: period,
		Price:          domain.Price{Amount: decimal.RequireFromString("50.5"), Currency: domain.CurrencyEUR},
		Quantity:       domain.Energy{MWh: decimal.RequireFromString("0.1")},
		State:          state,
	}
}

// ============================================================
// Handlers
// ============================================================

func TestHandlePublicTradeJournalsAndDeduplicates(t *testing.T) {
	w := newOfflineWatcher(t)

	trade := publicTradeFixture(t, 9001, domain.TradeStateActive)
	w.handlePublicTrade(trade)

	count, err := w.journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Reentrega idéntica tras una reconexión: no duplica la anotación
	w.handlePublicTrade(trade)
	count, err = w.journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Un cambio de estado reescribe la entrada
	trade.State = domain.TradeStateCanceled
	w.handlePublicTrade(trade)

	prev, err := w.journal.RecordPublicTrade(publicTradeEntry(trade, 0))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "CANCELED", prev.State)
}

func TestHandleTradeJournalsOwnTrade(t *testing.T) {
	w := newOfflineWatcher(t)

	trade := gridpoolTradeFixture(t, 555, domain.TradeStateActive)
	w.handleTrade(trade)

	count, err := w.journal.TradeCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Los trades propios no tocan el bucket público
	publicCount, err := w.journal.PublicTradeCount()
	require.NoError(t, err)
	assert.Zero(t, publicCount)

	prev, err := w.journal.RecordTrade(tradeEntry(trade, 0))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, uint64(42), prev.OrderID)
	assert.Equal(t, "BUY", prev.Side)
}

func TestHandleOrderWithoutRecorder(t *testing.T) {
	w := newOfflineWatcher(t)

	detail := domain.OrderDetail{
		OrderID: 42,
		Order: domain.Order{
			Side:  domain.MarketSideSell,
			Price: domain.Price{Amount: decimal.RequireFromString("48"), Currency: domain.CurrencyEUR},
		},
		StateDetail: domain.StateDetail{
			State:       domain.OrderStateActive,
			StateReason: domain.StateReasonAdd,
		},
		OpenQuantity:   domain.Energy{MWh: decimal.RequireFromString("0.1")},
		FilledQuantity: domain.Energy{MWh: decimal.Zero},
	}

	// Sin recorder solo registra métricas y logs; no debe tocar el journal
	w.handleOrder(detail)

	count, err := w.journal.TradeCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ============================================================
// Constructores de anotaciones y filtros
// ============================================================

func TestPublicTradeEntryFields(t *testing.T) {
	trade := publicTradeFixture(t, 9001, domain.TradeStateActive)

	entry := publicTradeEntry(trade, 1698345600250)

	assert.Equal(t, uint64(9001), entry.TradeID)
	assert.Zero(t, entry.OrderID, "el feed público es anónimo")
	assert.Empty(t, entry.Side)
	assert.Equal(t, "50.5", entry.Price)
	assert.Equal(t, "EUR", entry.Currency)
	assert.Equal(t, "0.1", entry.QuantityMWh)
	assert.Equal(t, "10YDE-EON------1", entry.DeliveryArea)
	assert.Equal(t, "ACTIVE", entry.State)
	assert.Equal(t, trade.ExecutionTime.UnixMilli(), entry.ExecutionMs)
	assert.Equal(t, int64(1698345600250), entry.ObservedMs)
}

func TestTradeEntryFields(t *testing.T) {
	trade := gridpoolTradeFixture(t, 555, domain.TradeStateCanceled)

	entry := tradeEntry(trade, 1698345600250)

	assert.Equal(t, uint64(555), entry.TradeID)
	assert.Equal(t, uint64(42), entry.OrderID)
	assert.Equal(t, "BUY", entry.Side)
	assert.Equal(t, "CANCELED", entry.State)
	assert.Equal(t, "10YDE-EON------1", entry.DeliveryArea)
}

func TestFiltersUseConfiguredDeliveryArea(t *testing.T) {
	w := &Watcher{config: &Config{DeliveryArea: "10YDE-EON------1"}}

	orderFilter := w.orderFilter()
	require.NotNil(t, orderFilter.DeliveryArea)
	assert.Equal(t, "10YDE-EON------1", orderFilter.DeliveryArea.Code)
	assert.Equal(t, domain.EnergyMarketCodeTypeEuropeEIC, orderFilter.DeliveryArea.CodeType)

	tradeFilter := w.tradeFilter()
	require.NotNil(t, tradeFilter.DeliveryArea)
	assert.Equal(t, "10YDE-EON------1", tradeFilter.DeliveryArea.Code)
}

func TestFiltersEmptyWithoutDeliveryArea(t *testing.T) {
	w := &Watcher{config: &Config{}}

	assert.Nil(t, w.orderFilter().DeliveryArea)
	assert.Nil(t, w.tradeFilter().DeliveryArea)

	// El feed público siempre observa el mercado completo
	public := w.publicTradeFilter()
	assert.Empty(t, public.States)
	assert.Nil(t, public.BuyDeliveryArea)
	assert.Nil(t, public.SellDeliveryArea)
}

// ============================================================
// Reconexión
// ============================================================

func TestNextBackoffDoublesUntilMax(t *testing.T) {
	w := &Watcher{config: &Config{ReconnectBackoffMax: 30 * time.Second}}

	assert.Equal(t, time.Second, w.nextBackoff(500*time.Millisecond))
	assert.Equal(t, 16*time.Second, w.nextBackoff(8*time.Second))
	assert.Equal(t, 30*time.Second, w.nextBackoff(16*time.Second))
	assert.Equal(t, 30*time.Second, w.nextBackoff(30*time.Second))
}

func TestSleepBackoffCompletes(t *testing.T) {
	w := newOfflineWatcher(t)
	assert.True(t, w.sleepBackoff(time.Millisecond))
}

func TestSleepBackoffStopsOnCancel(t *testing.T) {
	w := newOfflineWatcher(t)
	w.cancel()
	assert.False(t, w.sleepBackoff(time.Minute))
}

func TestStreamErrorCode(t *testing.T) {
	assert.Equal(t, "EOF", streamErrorCode(io.EOF))
	assert.Equal(t, "EOF", streamErrorCode(fmt.Errorf("recv: %w", io.EOF)))

	wrapped := domain.WrapError(domain.ErrConnectionLost, "stream interrupted", errors.New("connection reset"))
	assert.Equal(t, "CONNECTION_LOST", streamErrorCode(wrapped))

	assert.Equal(t, "UNKNOWN", streamErrorCode(errors.New("boom")))
}
