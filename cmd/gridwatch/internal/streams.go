package internal

import (
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/xKoRx/gridmarket/domain"
	"github.com/xKoRx/gridmarket/telemetry/semconv"
	"github.com/xKoRx/gridmarket/utils"
)

// watchPublicTrades goroutine que consume el feed público del mercado.
//
// Reabre la suscripción con backoff exponencial ante cualquier corte.
func (w *Watcher) watchPublicTrades() {
	defer w.wg.Done()

	w.logInfo("Public trades watch loop started", nil)

	backoff := w.config.ReconnectBackoffInitial
	attempt := 0

	for {
		select {
		case <-w.ctx.Done():
			w.logInfo("Public trades watch loop stopped", nil)
			return
		default:
		}

		stream, err := w.client.StreamPublicTrades(w.ctx, w.publicTradeFilter())
		if err != nil {
			if w.ctx.Err() != nil {
				w.logInfo("Public trades watch loop stopped", nil)
				return
			}
			attempt++
			w.logError("Failed to open public trades stream", err, map[string]interface{}{
				"attempt": attempt,
			})
			w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.PublicTrades, attempt)
			if !w.sleepBackoff(backoff) {
				return
			}
			backoff = w.nextBackoff(backoff)
			continue
		}

		if attempt > 0 {
			w.logInfo("Public trades stream reestablished", map[string]interface{}{
				"attempt": attempt,
			})
		}
		attempt = 0
		backoff = w.config.ReconnectBackoffInitial

		var lastEvent time.Time
		for {
			trade, err := stream.Recv()
			if err != nil {
				stream.Close()
				if w.ctx.Err() != nil {
					w.logInfo("Public trades watch loop stopped", nil)
					return
				}
				code := streamErrorCode(err)
				w.streamMetrics.RecordStreamInterrupted(w.ctx, semconv.StreamValues.PublicTrades, code)
				if errors.Is(err, io.EOF) {
					w.logWarn("Public trades stream closed by server", nil)
				} else {
					w.logError("Public trades stream interrupted", err, map[string]interface{}{
						"error_code": code,
					})
				}
				break
			}

			if !lastEvent.IsZero() {
				w.streamMetrics.RecordEventGap(w.ctx, semconv.StreamValues.PublicTrades, time.Since(lastEvent).Seconds())
			}
			lastEvent = time.Now()

			w.handlePublicTrade(trade)
		}

		attempt++
		w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.PublicTrades, attempt)
		if !w.sleepBackoff(backoff) {
			return
		}
		backoff = w.nextBackoff(backoff)
	}
}

// watchGridpoolTrades goroutine que consume los trades propios del gridpool.
func (w *Watcher) watchGridpoolTrades() {
	defer w.wg.Done()

	w.logInfo("Gridpool trades watch loop started", nil)

	backoff := w.config.ReconnectBackoffInitial
	attempt := 0

	for {
		select {
		case <-w.ctx.Done():
			w.logInfo("Gridpool trades watch loop stopped", nil)
			return
		default:
		}

		stream, err := w.client.StreamGridpoolTrades(w.ctx, w.config.GridpoolID, w.tradeFilter())
		if err != nil {
			if w.ctx.Err() != nil {
				w.logInfo("Gridpool trades watch loop stopped", nil)
				return
			}
			attempt++
			w.logError("Failed to open gridpool trades stream", err, map[string]interface{}{
				"attempt":     attempt,
				"gridpool_id": w.config.GridpoolID,
			})
			w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.Trades, attempt)
			if !w.sleepBackoff(backoff) {
				return
			}
			backoff = w.nextBackoff(backoff)
			continue
		}

		if attempt > 0 {
			w.logInfo("Gridpool trades stream reestablished", map[string]interface{}{
				"attempt": attempt,
			})
		}
		attempt = 0
		backoff = w.config.ReconnectBackoffInitial

		var lastEvent time.Time
		for {
			trade, err := stream.Recv()
			if err != nil {
				stream.Close()
				if w.ctx.Err() != nil {
					w.logInfo("Gridpool trades watch loop stopped", nil)
					return
				}
				code := streamErrorCode(err)
				w.streamMetrics.RecordStreamInterrupted(w.ctx, semconv.StreamValues.Trades, code)
				if errors.Is(err, io.EOF) {
					w.logWarn("Gridpool trades stream closed by server", nil)
				} else {
					w.logError("Gridpool trades stream interrupted", err, map[string]interface{}{
						"error_code": code,
					})
				}
				break
			}

			if !lastEvent.IsZero() {
				w.streamMetrics.RecordEventGap(w.ctx, semconv.StreamValues.Trades, time.Since(lastEvent).Seconds())
			}
			lastEvent = time.Now()

			w.handleTrade(trade)
		}

		attempt++
		w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.Trades, attempt)
		if !w.sleepBackoff(backoff) {
			return
		}
		backoff = w.nextBackoff(backoff)
	}
}

// watchGridpoolOrders goroutine que consume los cambios de estado de las
// órdenes del gridpool.
func (w *Watcher) watchGridpoolOrders() {
	defer w.wg.Done()

	w.logInfo("Gridpool orders watch loop started", nil)

	backoff := w.config.ReconnectBackoffInitial
	attempt := 0

	for {
		select {
		case <-w.ctx.Done():
			w.logInfo("Gridpool orders watch loop stopped", nil)
			return
		default:
		}

		stream, err := w.client.StreamGridpoolOrders(w.ctx, w.config.GridpoolID, w.orderFilter())
		if err != nil {
			if w.ctx.Err() != nil {
				w.logInfo("Gridpool orders watch loop stopped", nil)
				return
			}
			attempt++
			w.logError("Failed to open gridpool orders stream", err, map[string]interface{}{
				"attempt":     attempt,
				"gridpool_id": w.config.GridpoolID,
			})
			w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.Orders, attempt)
			if !w.sleepBackoff(backoff) {
				return
			}
			backoff = w.nextBackoff(backoff)
			continue
		}

		if attempt > 0 {
			w.logInfo("Gridpool orders stream reestablished", map[string]interface{}{
				"attempt": attempt,
			})
		}
		attempt = 0
		backoff = w.config.ReconnectBackoffInitial

		var lastEvent time.Time
		for {
			detail, err := stream.Recv()
			if err != nil {
				stream.Close()
				if w.ctx.Err() != nil {
					w.logInfo("Gridpool orders watch loop stopped", nil)
					return
				}
				code := streamErrorCode(err)
				w.streamMetrics.RecordStreamInterrupted(w.ctx, semconv.StreamValues.Orders, code)
				if errors.Is(err, io.EOF) {
					w.logWarn("Gridpool orders stream closed by server", nil)
				} else {
					w.logError("Gridpool orders stream interrupted", err, map[string]interface{}{
						"error_code": code,
					})
				}
				break
			}

			if !lastEvent.IsZero() {
				w.streamMetrics.RecordEventGap(w.ctx, semconv.StreamValues.Orders, time.Since(lastEvent).Seconds())
			}
			lastEvent = time.Now()

			w.handleOrder(detail)
		}

		attempt++
		w.streamMetrics.RecordReconnect(w.ctx, semconv.StreamValues.Orders, attempt)
		if !w.sleepBackoff(backoff) {
			return
		}
		backoff = w.nextBackoff(backoff)
	}
}

// handlePublicTrade procesa un trade del feed público: journal, métricas y
// recorder.
func (w *Watcher) handlePublicTrade(trade domain.PublicTrade) {
	ts := utils.NewEventTimestamps()
	ts.MarkExecution(trade.ExecutionTime.UnixMilli())
	ts.MarkReceived(utils.NowUnixMilli())

	w.streamMetrics.RecordStreamEvent(w.ctx, semconv.StreamValues.PublicTrades)

	entry := publicTradeEntry(trade, ts.ReceivedMs)
	prev, err := w.journal.RecordPublicTrade(entry)
	if err != nil {
		w.logError("Failed to journal public trade", err, map[string]interface{}{
			"trade_id": trade.ID,
		})
		return
	}
	ts.MarkJournaled(utils.NowUnixMilli())

	// Reentrega sin cambios: el servidor repite eventos tras una reconexión
	if prev != nil && prev.State == entry.State {
		w.telemetry.Debug(w.ctx, "Duplicate public trade ignored",
			semconv.Market.TradeID.Int64(int64(trade.ID)),
		)
		return
	}

	w.tradeMetrics.RecordTradeObserved(w.ctx,
		trade.BuyDeliveryArea.Code,
		"",
		string(trade.State),
		trade.Quantity.MWh.InexactFloat64(),
		trade.Price.Amount.InexactFloat64(),
		semconv.Market.Stream.String(semconv.StreamValues.PublicTrades),
	)
	w.telemetry.RecordLatency(w.ctx, "gridwatch.observation", float64(ts.ObservationLagMs()),
		semconv.Market.Stream.String(semconv.StreamValues.PublicTrades),
	)

	w.logInfo("Public trade observed", map[string]interface{}{
		"trade_id":           trade.ID,
		"buy_area":           trade.BuyDeliveryArea.Code,
		"sell_area":          trade.SellDeliveryArea.Code,
		"price":              trade.Price.String(),
		"quantity":           trade.Quantity.String(),
		"state":              string(trade.State),
		"observation_lag_ms": ts.ObservationLagMs(),
	})

	if w.recorder == nil {
		return
	}

	op := "insert"
	if prev != nil {
		op = "update"
	}
	done := w.postgresMetrics.StartDBOpTimer(w.ctx, op)
	var dbErr error
	if prev == nil {
		dbErr = w.recorder.RecordPublicTrade(w.ctx, trade, ts.ReceivedMs)
	} else {
		dbErr = w.recorder.UpdatePublicTradeState(w.ctx, trade.ID, string(trade.State), ts.ReceivedMs)
		if errors.Is(dbErr, sql.ErrNoRows) {
			// El journal conocía el trade pero la tabla no (recorder
			// habilitado después del journal)
			dbErr = w.recorder.RecordPublicTrade(w.ctx, trade, ts.ReceivedMs)
		}
	}
	done()
	if dbErr != nil {
		w.logError("Failed to record public trade", dbErr, map[string]interface{}{
			"trade_id": trade.ID,
		})
		return
	}
	ts.MarkRecorded(utils.NowUnixMilli())
	w.postgresMetrics.RecordRowsWritten(w.ctx, "public_trades", 1)
	w.telemetry.RecordLatency(w.ctx, "gridwatch.record", float64(ts.RecordLatencyMs()),
		semconv.Market.Stream.String(semconv.StreamValues.PublicTrades),
	)
}

// handleTrade procesa un trade propio del gridpool.
func (w *Watcher) handleTrade(trade domain.Trade) {
	ts := utils.NewEventTimestamps()
	ts.MarkExecution(trade.ExecutionTime.UnixMilli())
	ts.MarkReceived(utils.NowUnixMilli())

	w.streamMetrics.RecordStreamEvent(w.ctx, semconv.StreamValues.Trades)

	entry := tradeEntry(trade, ts.ReceivedMs)
	prev, err := w.journal.RecordTrade(entry)
	if err != nil {
		w.logError("Failed to journal gridpool trade", err, map[string]interface{}{
			"trade_id": trade.ID,
		})
		return
	}
	ts.MarkJournaled(utils.NowUnixMilli())

	if prev != nil && prev.State == entry.State {
		w.telemetry.Debug(w.ctx, "Duplicate gridpool trade ignored",
			semconv.Market.TradeID.Int64(int64(trade.ID)),
		)
		return
	}

	w.tradeMetrics.RecordTradeObserved(w.ctx,
		trade.DeliveryArea.Code,
		string(trade.Side),
		string(trade.State),
		trade.Quantity.MWh.InexactFloat64(),
		trade.Price.Amount.InexactFloat64(),
		semconv.Market.Stream.String(semconv.StreamValues.Trades),
		semconv.Market.GridpoolID.Int64(int64(w.config.GridpoolID)),
	)
	w.telemetry.RecordLatency(w.ctx, "gridwatch.observation", float64(ts.ObservationLagMs()),
		semconv.Market.Stream.String(semconv.StreamValues.Trades),
	)

	w.logInfo("Gridpool trade executed", map[string]interface{}{
		"trade_id":           trade.ID,
		"order_id":           trade.OrderID,
		"side":               string(trade.Side),
		"delivery_area":      trade.DeliveryArea.Code,
		"price":              trade.Price.String(),
		"quantity":           trade.Quantity.String(),
		"state":              string(trade.State),
		"observation_lag_ms": ts.ObservationLagMs(),
	})

	if w.recorder == nil {
		return
	}

	op := "insert"
	if prev != nil {
		op = "update"
	}
	done := w.postgresMetrics.StartDBOpTimer(w.ctx, op)
	var dbErr error
	if prev == nil {
		dbErr = w.recorder.RecordTrade(w.ctx, w.config.GridpoolID, trade, ts.ReceivedMs)
	} else {
		dbErr = w.recorder.UpdateTradeState(w.ctx, trade.ID, string(trade.State), ts.ReceivedMs)
		if errors.Is(dbErr, sql.ErrNoRows) {
			dbErr = w.recorder.RecordTrade(w.ctx, w.config.GridpoolID, trade, ts.ReceivedMs)
		}
	}
	done()
	if dbErr != nil {
		w.logError("Failed to record gridpool trade", dbErr, map[string]interface{}{
			"trade_id": trade.ID,
		})
		return
	}
	ts.MarkRecorded(utils.NowUnixMilli())
	w.postgresMetrics.RecordRowsWritten(w.ctx, "trades", 1)
	w.telemetry.RecordLatency(w.ctx, "gridwatch.record", float64(ts.RecordLatencyMs()),
		semconv.Market.Stream.String(semconv.StreamValues.Trades),
	)
}

// handleOrder procesa un cambio de estado de una orden del gridpool. Las
// órdenes no pasan por el journal: cada observación es una fila del event
// log en PostgreSQL.
func (w *Watcher) handleOrder(detail domain.OrderDetail) {
	observedMs := utils.NowUnixMilli()

	w.streamMetrics.RecordStreamEvent(w.ctx, semconv.StreamValues.Orders)
	w.orderMetrics.RecordOrderStateChange(w.ctx, w.config.GridpoolID, detail.OrderID,
		string(detail.StateDetail.State),
	)

	w.logInfo("Order state changed", map[string]interface{}{
		"order_id":     detail.OrderID,
		"state":        string(detail.StateDetail.State),
		"state_reason": string(detail.StateDetail.StateReason),
		"side":         string(detail.Order.Side),
		"price":        detail.Order.Price.String(),
		"open_mwh":     detail.OpenQuantity.String(),
		"filled_mwh":   detail.FilledQuantity.String(),
	})

	if w.recorder == nil {
		return
	}

	done := w.postgresMetrics.StartDBOpTimer(w.ctx, "insert")
	err := w.recorder.RecordOrderEvent(w.ctx, w.config.GridpoolID, detail, observedMs)
	done()
	if err != nil {
		w.logError("Failed to record order event", err, map[string]interface{}{
			"order_id": detail.OrderID,
		})
		return
	}
	w.postgresMetrics.RecordRowsWritten(w.ctx, "order_events", 1)
}

// publicTradeFilter arma el filtro del feed público. Gridwatch observa el
// mercado completo; las áreas se filtran solo en los streams propios.
func (w *Watcher) publicTradeFilter() domain.PublicTradeFilter {
	return domain.PublicTradeFilter{}
}

// tradeFilter arma el filtro de trades propios según configuración.
func (w *Watcher) tradeFilter() domain.GridpoolTradeFilter {
	var filter domain.GridpoolTradeFilter
	if w.config.DeliveryArea != "" {
		area := domain.DeliveryArea{
			Code:     w.config.DeliveryArea,
			CodeType: domain.EnergyMarketCodeTypeEuropeEIC,
		}
		filter.DeliveryArea = &area
	}
	return filter
}

// orderFilter arma el filtro de órdenes propias según configuración.
func (w *Watcher) orderFilter() domain.GridpoolOrderFilter {
	var filter domain.GridpoolOrderFilter
	if w.config.DeliveryArea != "" {
		area := domain.DeliveryArea{
			Code:     w.config.DeliveryArea,
			CodeType: domain.EnergyMarketCodeTypeEuropeEIC,
		}
		filter.DeliveryArea = &area
	}
	return filter
}

// sleepBackoff espera el backoff indicado. Retorna false si el contexto se
// canceló durante la espera.
func (w *Watcher) sleepBackoff(d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-w.ctx.Done():
		return false
	}
}

// nextBackoff duplica el backoff con techo en ReconnectBackoffMax.
func (w *Watcher) nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > w.config.ReconnectBackoffMax {
		next = w.config.ReconnectBackoffMax
	}
	return next
}

// streamErrorCode extrae el código de dominio de un corte de stream.
func streamErrorCode(err error) string {
	if errors.Is(err, io.EOF) {
		return "EOF"
	}
	return string(domain.CodeOf(err))
}

// publicTradeEntry arma la anotación de journal para un trade público.
func publicTradeEntry(trade domain.PublicTrade, observedMs int64) *JournalEntry {
	return &JournalEntry{
		TradeID:      trade.ID,
		Price:        trade.Price.Amount.String(),
		Currency:     string(trade.Price.Currency),
		QuantityMWh:  trade.Quantity.MWh.String(),
		DeliveryArea: trade.BuyDeliveryArea.Code,
		State:        string(trade.State),
		ExecutionMs:  trade.ExecutionTime.UnixMilli(),
		ObservedMs:   observedMs,
	}
}

// tradeEntry arma la anotación de journal para un trade propio.
func tradeEntry(trade domain.Trade, observedMs int64) *JournalEntry {
	return &JournalEntry{
		TradeID:      trade.ID,
		OrderID:      trade.OrderID,
		Side:         string(trade.Side),
		Price:        trade.Price.Amount.String(),
		Currency:     string(trade.Price.Currency),
		QuantityMWh:  trade.Quantity.MWh.String(),
		DeliveryArea: trade.DeliveryArea.Code,
		State:        string(trade.State),
		ExecutionMs:  trade.ExecutionTime.UnixMilli(),
		ObservedMs:   observedMs,
	}
}
