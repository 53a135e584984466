package pb

// Currency identifica la moneda de un precio según ISO 4217.
type Currency int32

const (
	CurrencyUnspecified Currency = 0
	CurrencyUSD         Currency = 1
	CurrencyCAD         Currency = 2
	CurrencyEUR         Currency = 3
	CurrencyGBP         Currency = 4
	CurrencyCHF         Currency = 5
	CurrencyCZK         Currency = 6
	CurrencyDKK         Currency = 7
	CurrencyHRK         Currency = 8
	CurrencyHUF         Currency = 9
	CurrencyNOK         Currency = 10
	CurrencyPLN         Currency = 11
	CurrencyRON         Currency = 12
	CurrencySEK         Currency = 13
	CurrencyTRY         Currency = 14
)

// EnergyMarketCodeType indica el esquema de codificación de un área de entrega.
type EnergyMarketCodeType int32

const (
	EnergyMarketCodeTypeUnspecified EnergyMarketCodeType = 0
	EnergyMarketCodeTypeEuropeEIC   EnergyMarketCodeType = 1
	EnergyMarketCodeTypeUSNERC      EnergyMarketCodeType = 2
)

// DeliveryDuration es la duración de un período de entrega. Solo se admiten
// los buckets estándar del mercado intradiario.
type DeliveryDuration int32

const (
	DeliveryDurationUnspecified DeliveryDuration = 0
	DeliveryDuration5Min        DeliveryDuration = 1
	DeliveryDuration15Min       DeliveryDuration = 2
	DeliveryDuration30Min       DeliveryDuration = 3
	DeliveryDuration60Min       DeliveryDuration = 4
)

// MarketSide distingue compra de venta.
type MarketSide int32

const (
	MarketSideUnspecified MarketSide = 0
	MarketSideBuy         MarketSide = 1
	MarketSideSell        MarketSide = 2
)

// OrderType clasifica la semántica de ejecución de una orden.
type OrderType int32

const (
	OrderTypeUnspecified OrderType = 0
	OrderTypeLimit       OrderType = 1
	OrderTypeStopLimit   OrderType = 2
	OrderTypeIceberg     OrderType = 3
	OrderTypeBlock       OrderType = 4
	OrderTypeBalance     OrderType = 5
	OrderTypePrearranged OrderType = 6
	OrderTypePrivate     OrderType = 7
)

// OrderExecutionOption restringe cómo puede ejecutarse una orden.
type OrderExecutionOption int32

const (
	OrderExecutionOptionUnspecified OrderExecutionOption = 0
	OrderExecutionOptionAON         OrderExecutionOption = 1
	OrderExecutionOptionFOK         OrderExecutionOption = 2
	OrderExecutionOptionIOC         OrderExecutionOption = 3
)

// OrderState es el estado del ciclo de vida de una orden.
type OrderState int32

const (
	OrderStateUnspecified     OrderState = 0
	OrderStatePending         OrderState = 1
	OrderStateActive          OrderState = 2
	OrderStateCancelRequested OrderState = 3
	OrderStateCancelRejected  OrderState = 4
	OrderStateCanceled        OrderState = 5
	OrderStateExpired         OrderState = 6
	OrderStateFailed          OrderState = 7
	OrderStateHidden          OrderState = 8
	OrderStateFilled          OrderState = 9
)

// TradeState es el estado del ciclo de vida de un trade.
type TradeState int32

const (
	TradeStateUnspecified       TradeState = 0
	TradeStateActive            TradeState = 1
	TradeStateCancelRequested   TradeState = 2
	TradeStateCancelRejected    TradeState = 3
	TradeStateCanceled          TradeState = 4
	TradeStateRecallRequested   TradeState = 5
	TradeStateRecallRejected    TradeState = 6
	TradeStateRecalled          TradeState = 7
	TradeStateApprovalRequested TradeState = 8
)

// StateReason explica qué evento llevó una orden a su estado actual.
type StateReason int32

const (
	StateReasonUnspecified      StateReason = 0
	StateReasonAdd              StateReason = 1
	StateReasonModify           StateReason = 2
	StateReasonDelete           StateReason = 3
	StateReasonDeactivate       StateReason = 4
	StateReasonReject           StateReason = 5
	StateReasonFullExecution    StateReason = 6
	StateReasonPartialExecution StateReason = 7
	StateReasonIcebergSliceAdd  StateReason = 8
	StateReasonValidationFail   StateReason = 9
	StateReasonUnknownState     StateReason = 10
)

// MarketActor identifica quién originó un cambio de estado.
type MarketActor int32

const (
	MarketActorUnspecified    MarketActor = 0
	MarketActorUser           MarketActor = 1
	MarketActorMarketOperator MarketActor = 2
	MarketActorSystemOperator MarketActor = 3
)
