package internal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // Driver PostgreSQL

	"github.com/xKoRx/gridmarket/domain"
)

// TradeRecorder persiste trades y eventos de órdenes observados en
// PostgreSQL, esquema gridmarket. El esquema se administra fuera del
// binario; el recorder asume que las tablas existen.
type TradeRecorder struct {
	db *sql.DB
}

// OpenTradeRecorder abre el pool de conexiones para el DSN dado. La conexión
// real se establece lazy; Ping la verifica.
func OpenTradeRecorder(dsn string) (*TradeRecorder, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return &TradeRecorder{db: db}, nil
}

// NewTradeRecorder crea un recorder sobre un pool existente.
func NewTradeRecorder(db *sql.DB) *TradeRecorder {
	return &TradeRecorder{db: db}
}

func (r *TradeRecorder) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (r *TradeRecorder) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// RecordPublicTrade inserta un trade del feed público. Idempotente por
// trade_id.
func (r *TradeRecorder) RecordPublicTrade(ctx context.Context, trade domain.PublicTrade, observedMs int64) error {
	query := `
		INSERT INTO gridmarket.public_trades (
			trade_id, buy_delivery_area, sell_delivery_area,
			delivery_start, delivery_duration_min, execution_time,
			price, currency, quantity_mwh, state, observed_at_ms
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (trade_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		int64(trade.ID),
		nullIfEmpty(trade.BuyDeliveryArea.Code),
		nullIfEmpty(trade.SellDeliveryArea.Code),
		trade.DeliveryPeriod.Start.UTC(),
		int(trade.DeliveryPeriod.Duration.Minutes()),
		trade.ExecutionTime.UTC(),
		trade.Price.Amount.String(),
		string(trade.Price.Currency),
		trade.Quantity.MWh.String(),
		string(trade.State),
		observedMs,
	)
	if err != nil {
		return fmt.Errorf("insert public_trades: %w", err)
	}
	return nil
}

// UpdatePublicTradeState actualiza el estado de un trade público ya
// registrado (ej. recall del exchange).
func (r *TradeRecorder) UpdatePublicTradeState(ctx context.Context, tradeID uint64, state string, observedMs int64) error {
	query := `
		UPDATE gridmarket.public_trades
		SET state = $2,
		    observed_at_ms = $3,
		    updated_at = NOW()
		WHERE trade_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, int64(tradeID), state, observedMs)
	if err != nil {
		return fmt.Errorf("update public_trades: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RecordTrade inserta un trade propio del gridpool. Idempotente por
// trade_id.
func (r *TradeRecorder) RecordTrade(ctx context.Context, gridpoolID uint64, trade domain.Trade, observedMs int64) error {
	query := `
		INSERT INTO gridmarket.trades (
			trade_id, gridpool_id, order_id, side, execution_time,
			delivery_area, delivery_start, delivery_duration_min,
			price, currency, quantity_mwh, state, observed_at_ms
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (trade_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		int64(trade.ID),
		int64(gridpoolID),
		int64(trade.OrderID),
		string(trade.Side),
		trade.ExecutionTime.UTC(),
		nullIfEmpty(trade.DeliveryArea.Code),
		trade.DeliveryPeriod.Start.UTC(),
		int(trade.DeliveryPeriod.Duration.Minutes()),
		trade.Price.Amount.String(),
		string(trade.Price.Currency),
		trade.Quantity.MWh.String(),
		string(trade.State),
		observedMs,
	)
	if err != nil {
		return fmt.Errorf("insert trades: %w", err)
	}
	return nil
}

// UpdateTradeState actualiza el estado de un trade propio ya registrado.
func (r *TradeRecorder) UpdateTradeState(ctx context.Context, tradeID uint64, state string, observedMs int64) error {
	query := `
		UPDATE gridmarket.trades
		SET state = $2,
		    observed_at_ms = $3,
		    updated_at = NOW()
		WHERE trade_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, int64(tradeID), state, observedMs)
	if err != nil {
		return fmt.Errorf("update trades: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RecordOrderEvent inserta una observación del stream de órdenes. La tabla
// es un event log append-only: cada cambio de estado es una fila.
func (r *TradeRecorder) RecordOrderEvent(ctx context.Context, gridpoolID uint64, detail domain.OrderDetail, observedMs int64) error {
	query := `
		INSERT INTO gridmarket.order_events (
			gridpool_id, order_id, state, state_reason, market_actor,
			side, order_type, price, currency, quantity_mwh,
			open_mwh, filled_mwh, delivery_area, delivery_start,
			delivery_duration_min, modification_time, observed_at_ms
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`
	_, err := r.db.ExecContext(ctx, query,
		int64(gridpoolID),
		int64(detail.OrderID),
		string(detail.StateDetail.State),
		nullIfEmpty(string(detail.StateDetail.StateReason)),
		nullIfEmpty(string(detail.StateDetail.MarketActor)),
		string(detail.Order.Side),
		string(detail.Order.Type),
		detail.Order.Price.Amount.String(),
		string(detail.Order.Price.Currency),
		detail.Order.Quantity.MWh.String(),
		detail.OpenQuantity.MWh.String(),
		detail.FilledQuantity.MWh.String(),
		nullIfEmpty(detail.Order.DeliveryArea.Code),
		detail.Order.DeliveryPeriod.Start.UTC(),
		int(detail.Order.DeliveryPeriod.Duration.Minutes()),
		detail.ModificationTime.UTC(),
		observedMs,
	)
	if err != nil {
		return fmt.Errorf("insert order_events: %w", err)
	}
	return nil
}

func nullIfEmpty(val string) interface{} {
	if val == "" {
		return nil
	}
	return val
}
