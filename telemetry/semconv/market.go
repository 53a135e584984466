package semconv

import "go.opentelemetry.io/otel/attribute"

// Market contiene atributos semánticos específicos del mercado de
// electricidad de gridmarket.
//
// # Identificadores
//
//   - gridmarket.gridpool_id: ID del gridpool
//   - gridmarket.order_id: ID de la orden asignado por el servicio
//   - gridmarket.trade_id: ID del trade ejecutado
//
// # Orden
//
//   - gridmarket.side: Lado del mercado (BUY/SELL)
//   - gridmarket.order_type: Tipo de orden (LIMIT, etc.)
//   - gridmarket.price: Precio límite de la orden
//   - gridmarket.currency: Divisa del precio (EUR, etc.)
//   - gridmarket.quantity_mwh: Cantidad de energía contratada en MWh
//   - gridmarket.delivery_area: Código del área de entrega (EIC)
//   - gridmarket.delivery_start: Inicio de la ventana de entrega
//   - gridmarket.delivery_duration: Duración de la ventana (15m/30m/1h)
//
// # Estado
//
//   - gridmarket.state: Estado de la orden o trade (ACTIVE, FILLED, etc.)
//   - gridmarket.state_reason: Causa del último cambio de estado
//   - gridmarket.status: Resultado de la operación (success/error)
//   - gridmarket.error_code: Código de error de dominio si aplica
//
// # Operación
//
//   - gridmarket.operation: Operación del cliente (create_order, etc.)
//   - gridmarket.stream: Stream suscrito (orders/trades/public_trades)
//   - gridmarket.component: Componente emisor (client/watcher/recorder)
//   - gridmarket.attempt: Número de intento en reintentos
//
// # Uso
//
//	import "github.com/xKoRx/gridmarket/telemetry/semconv"
//
//	// Logs
//	client.Info(ctx, "Order placed",
//	    semconv.Market.GridpoolID.Int64(123),
//	    semconv.Market.Side.String("BUY"),
//	    semconv.Market.QuantityMWh.Float64(0.1),
//	)
//
//	// Métricas
//	metrics.RecordOrderResult(ctx, "create", true,
//	    semconv.Market.GridpoolID.Int64(123),
//	)
var Market = marketAttributes{
	// Identificadores
	GridpoolID: attribute.Key("gridmarket.gridpool_id"),
	OrderID:    attribute.Key("gridmarket.order_id"),
	TradeID:    attribute.Key("gridmarket.trade_id"),

	// Orden
	Side:             attribute.Key("gridmarket.side"),
	OrderType:        attribute.Key("gridmarket.order_type"),
	Price:            attribute.Key("gridmarket.price"),
	Currency:         attribute.Key("gridmarket.currency"),
	QuantityMWh:      attribute.Key("gridmarket.quantity_mwh"),
	DeliveryArea:     attribute.Key("gridmarket.delivery_area"),
	DeliveryStart:    attribute.Key("gridmarket.delivery_start"),
	DeliveryDuration: attribute.Key("gridmarket.delivery_duration"),

	// Estado
	State:       attribute.Key("gridmarket.state"),
	StateReason: attribute.Key("gridmarket.state_reason"),
	Status:      attribute.Key("gridmarket.status"),
	ErrorCode:   attribute.Key("gridmarket.error_code"),

	// Operación
	Operation: attribute.Key("gridmarket.operation"),
	Stream:    attribute.Key("gridmarket.stream"),
	Component: attribute.Key("gridmarket.component"),
	Attempt:   attribute.Key("gridmarket.attempt"),
}

type marketAttributes struct {
	// Identificadores
	GridpoolID attribute.Key // ID del gridpool
	OrderID    attribute.Key // ID de la orden
	TradeID    attribute.Key // ID del trade

	// Orden
	Side             attribute.Key // Lado del mercado (BUY/SELL)
	OrderType        attribute.Key // Tipo de orden
	Price            attribute.Key // Precio límite
	Currency         attribute.Key // Divisa del precio
	QuantityMWh      attribute.Key // Cantidad en MWh
	DeliveryArea     attribute.Key // Código EIC del área de entrega
	DeliveryStart    attribute.Key // Inicio de la ventana de entrega
	DeliveryDuration attribute.Key // Duración de la ventana

	// Estado
	State       attribute.Key // Estado de la orden o trade
	StateReason attribute.Key // Causa del cambio de estado
	Status      attribute.Key // Resultado (success/error)
	ErrorCode   attribute.Key // Código de error de dominio

	// Operación
	Operation attribute.Key // Operación del cliente
	Stream    attribute.Key // Stream suscrito
	Component attribute.Key // Componente emisor
	Attempt   attribute.Key // Número de intento
}

// Values pre-definidos para atributos comunes

// ComponentValues valores válidos para gridmarket.component
var ComponentValues = struct {
	Client   string
	Watcher  string
	Recorder string
	Journal  string
}{
	Client:   "client",
	Watcher:  "watcher",
	Recorder: "recorder",
	Journal:  "journal",
}

// StatusValues valores válidos para gridmarket.status
var StatusValues = struct {
	Success  string
	Rejected string
	Timeout  string
	Error    string
}{
	Success:  "success",
	Rejected: "rejected",
	Timeout:  "timeout",
	Error:    "error",
}

// StreamValues valores válidos para gridmarket.stream
var StreamValues = struct {
	Orders       string
	Trades       string
	PublicTrades string
}{
	Orders:       "orders",
	Trades:       "trades",
	PublicTrades: "public_trades",
}

// Helper functions para crear atributos comunes

// OrderAttributes crea un conjunto de atributos para una orden.
//
// Example:
//
//	attrs := semconv.OrderAttributes(123, 42, "BUY")
//	client.Info(ctx, "Order state changed", attrs...)
func OrderAttributes(gridpoolID, orderID uint64, side string) []attribute.KeyValue {
	return []attribute.KeyValue{
		Market.GridpoolID.Int64(int64(gridpoolID)),
		Market.OrderID.Int64(int64(orderID)),
		Market.Side.String(side),
	}
}

// TradeAttributes crea un conjunto de atributos para un trade.
func TradeAttributes(tradeID uint64, deliveryArea, side string) []attribute.KeyValue {
	return []attribute.KeyValue{
		Market.TradeID.Int64(int64(tradeID)),
		Market.DeliveryArea.String(deliveryArea),
		Market.Side.String(side),
	}
}
