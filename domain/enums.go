package domain

import (
	"github.com/xKoRx/gridmarket/pb"
)

// Currency representa la moneda de un precio según ISO 4217.
type Currency string

const (
	CurrencyUnspecified Currency = "UNSPECIFIED"
	CurrencyUSD         Currency = "USD"
	CurrencyCAD         Currency = "CAD"
	CurrencyEUR         Currency = "EUR"
	CurrencyGBP         Currency = "GBP"
	CurrencyCHF         Currency = "CHF"
	CurrencyCZK         Currency = "CZK"
	CurrencyDKK         Currency = "DKK"
	CurrencyHRK         Currency = "HRK"
	CurrencyHUF         Currency = "HUF"
	CurrencyNOK         Currency = "NOK"
	CurrencyPLN         Currency = "PLN"
	CurrencyRON         Currency = "RON"
	CurrencySEK         Currency = "SEK"
	CurrencyTRY         Currency = "TRY"
)

// String implementa fmt.Stringer para Currency.
func (c Currency) String() string {
	return string(c)
}

// CurrencyToProto convierte una Currency de dominio a su enum wire.
func CurrencyToProto(c Currency) pb.Currency {
	switch c {
	case CurrencyUSD:
		return pb.CurrencyUSD
	case CurrencyCAD:
		return pb.CurrencyCAD
	case CurrencyEUR:
		return pb.CurrencyEUR
	case CurrencyGBP:
		return pb.CurrencyGBP
	case CurrencyCHF:
		return pb.CurrencyCHF
	case CurrencyCZK:
		return pb.CurrencyCZK
	case CurrencyDKK:
		return pb.CurrencyDKK
	case CurrencyHRK:
		return pb.CurrencyHRK
	case CurrencyHUF:
		return pb.CurrencyHUF
	case CurrencyNOK:
		return pb.CurrencyNOK
	case CurrencyPLN:
		return pb.CurrencyPLN
	case CurrencyRON:
		return pb.CurrencyRON
	case CurrencySEK:
		return pb.CurrencySEK
	case CurrencyTRY:
		return pb.CurrencyTRY
	default:
		return pb.CurrencyUnspecified
	}
}

// CurrencyFromProto convierte un enum wire a Currency de dominio. Valores
// desconocidos del servidor mapean a UNSPECIFIED, nunca fallan.
func CurrencyFromProto(c pb.Currency) Currency {
	switch c {
	case pb.CurrencyUSD:
		return CurrencyUSD
	case pb.CurrencyCAD:
		return CurrencyCAD
	case pb.CurrencyEUR:
		return CurrencyEUR
	case pb.CurrencyGBP:
		return CurrencyGBP
	case pb.CurrencyCHF:
		return CurrencyCHF
	case pb.CurrencyCZK:
		return CurrencyCZK
	case pb.CurrencyDKK:
		return CurrencyDKK
	case pb.CurrencyHRK:
		return CurrencyHRK
	case pb.CurrencyHUF:
		return CurrencyHUF
	case pb.CurrencyNOK:
		return CurrencyNOK
	case pb.CurrencyPLN:
		return CurrencyPLN
	case pb.CurrencyRON:
		return CurrencyRON
	case pb.CurrencySEK:
		return CurrencySEK
	case pb.CurrencyTRY:
		return CurrencyTRY
	default:
		return CurrencyUnspecified
	}
}

// EnergyMarketCodeType indica bajo qué esquema se interpreta el código de
// un área de entrega.
type EnergyMarketCodeType string

const (
	EnergyMarketCodeTypeUnspecified EnergyMarketCodeType = "UNSPECIFIED"
	EnergyMarketCodeTypeEuropeEIC   EnergyMarketCodeType = "EUROPE_EIC"
	EnergyMarketCodeTypeUSNERC      EnergyMarketCodeType = "US_NERC"
)

// String implementa fmt.Stringer para EnergyMarketCodeType.
func (c EnergyMarketCodeType) String() string {
	return string(c)
}

// EnergyMarketCodeTypeToProto convierte el code type de dominio a wire.
func EnergyMarketCodeTypeToProto(c EnergyMarketCodeType) pb.EnergyMarketCodeType {
	switch c {
	case EnergyMarketCodeTypeEuropeEIC:
		return pb.EnergyMarketCodeTypeEuropeEIC
	case EnergyMarketCodeTypeUSNERC:
		return pb.EnergyMarketCodeTypeUSNERC
	default:
		return pb.EnergyMarketCodeTypeUnspecified
	}
}

// EnergyMarketCodeTypeFromProto convierte el code type wire a dominio.
func EnergyMarketCodeTypeFromProto(c pb.EnergyMarketCodeType) EnergyMarketCodeType {
	switch c {
	case pb.EnergyMarketCodeTypeEuropeEIC:
		return EnergyMarketCodeTypeEuropeEIC
	case pb.EnergyMarketCodeTypeUSNERC:
		return EnergyMarketCodeTypeUSNERC
	default:
		return EnergyMarketCodeTypeUnspecified
	}
}

// MarketSide representa la dirección de una orden o trade.
type MarketSide string

const (
	MarketSideUnspecified MarketSide = "UNSPECIFIED"
	MarketSideBuy         MarketSide = "BUY"
	MarketSideSell        MarketSide = "SELL"
)

// String implementa fmt.Stringer para MarketSide.
func (s MarketSide) String() string {
	return string(s)
}

// MarketSideToProto convierte el side de dominio a wire.
func MarketSideToProto(s MarketSide) pb.MarketSide {
	switch s {
	case MarketSideBuy:
		return pb.MarketSideBuy
	case MarketSideSell:
		return pb.MarketSideSell
	default:
		return pb.MarketSideUnspecified
	}
}

// MarketSideFromProto convierte el side wire a dominio.
func MarketSideFromProto(s pb.MarketSide) MarketSide {
	switch s {
	case pb.MarketSideBuy:
		return MarketSideBuy
	case pb.MarketSideSell:
		return MarketSideSell
	default:
		return MarketSideUnspecified
	}
}

// OrderType clasifica la semántica de ejecución de una orden.
type OrderType string

const (
	OrderTypeUnspecified OrderType = "UNSPECIFIED"
	OrderTypeLimit       OrderType = "LIMIT"
	OrderTypeStopLimit   OrderType = "STOP_LIMIT"
	OrderTypeIceberg     OrderType = "ICEBERG"
	OrderTypeBlock       OrderType = "BLOCK"
	OrderTypeBalance     OrderType = "BALANCE"
	OrderTypePrearranged OrderType = "PREARRANGED"
	OrderTypePrivate     OrderType = "PRIVATE"
)

// String implementa fmt.Stringer para OrderType.
func (t OrderType) String() string {
	return string(t)
}

// OrderTypeToProto convierte el tipo de orden de dominio a wire.
func OrderTypeToProto(t OrderType) pb.OrderType {
	switch t {
	case OrderTypeLimit:
		return pb.OrderTypeLimit
	case OrderTypeStopLimit:
		return pb.OrderTypeStopLimit
	case OrderTypeIceberg:
		return pb.OrderTypeIceberg
	case OrderTypeBlock:
		return pb.OrderTypeBlock
	case OrderTypeBalance:
		return pb.OrderTypeBalance
	case OrderTypePrearranged:
		return pb.OrderTypePrearranged
	case OrderTypePrivate:
		return pb.OrderTypePrivate
	default:
		return pb.OrderTypeUnspecified
	}
}

// OrderTypeFromProto convierte el tipo de orden wire a dominio.
func OrderTypeFromProto(t pb.OrderType) OrderType {
	switch t {
	case pb.OrderTypeLimit:
		return OrderTypeLimit
	case pb.OrderTypeStopLimit:
		return OrderTypeStopLimit
	case pb.OrderTypeIceberg:
		return OrderTypeIceberg
	case pb.OrderTypeBlock:
		return OrderTypeBlock
	case pb.OrderTypeBalance:
		return OrderTypeBalance
	case pb.OrderTypePrearranged:
		return OrderTypePrearranged
	case pb.OrderTypePrivate:
		return OrderTypePrivate
	default:
		return OrderTypeUnspecified
	}
}

// OrderExecutionOption restringe cómo puede ejecutarse una orden.
type OrderExecutionOption string

const (
	OrderExecutionOptionUnspecified OrderExecutionOption = "UNSPECIFIED"
	OrderExecutionOptionAON         OrderExecutionOption = "AON" // All or none
	OrderExecutionOptionFOK         OrderExecutionOption = "FOK" // Fill or kill
	OrderExecutionOptionIOC         OrderExecutionOption = "IOC" // Immediate or cancel
)

// String implementa fmt.Stringer para OrderExecutionOption.
func (o OrderExecutionOption) String() string {
	return string(o)
}

// OrderExecutionOptionToProto convierte la opción de ejecución a wire.
func OrderExecutionOptionToProto(o OrderExecutionOption) pb.OrderExecutionOption {
	switch o {
	case OrderExecutionOptionAON:
		return pb.OrderExecutionOptionAON
	case OrderExecutionOptionFOK:
		return pb.OrderExecutionOptionFOK
	case OrderExecutionOptionIOC:
		return pb.OrderExecutionOptionIOC
	default:
		return pb.OrderExecutionOptionUnspecified
	}
}

// OrderExecutionOptionFromProto convierte la opción de ejecución a dominio.
func OrderExecutionOptionFromProto(o pb.OrderExecutionOption) OrderExecutionOption {
	switch o {
	case pb.OrderExecutionOptionAON:
		return OrderExecutionOptionAON
	case pb.OrderExecutionOptionFOK:
		return OrderExecutionOptionFOK
	case pb.OrderExecutionOptionIOC:
		return OrderExecutionOptionIOC
	default:
		return OrderExecutionOptionUnspecified
	}
}

// OrderState es el estado del ciclo de vida de una orden.
type OrderState string

const (
	OrderStateUnspecified     OrderState = "UNSPECIFIED"
	OrderStatePending         OrderState = "PENDING"
	OrderStateActive          OrderState = "ACTIVE"
	OrderStateCancelRequested OrderState = "CANCEL_REQUESTED"
	OrderStateCancelRejected  OrderState = "CANCEL_REJECTED"
	OrderStateCanceled        OrderState = "CANCELED"
	OrderStateExpired         OrderState = "EXPIRED"
	OrderStateFailed          OrderState = "FAILED"
	OrderStateHidden          OrderState = "HIDDEN"
	OrderStateFilled          OrderState = "FILLED"
)

// String implementa fmt.Stringer para OrderState.
func (s OrderState) String() string {
	return string(s)
}

// IsTerminal indica si un OrderState es terminal (no cambiará más).
func (s OrderState) IsTerminal() bool {
	return s == OrderStateCanceled || s == OrderStateExpired ||
		s == OrderStateFailed || s == OrderStateFilled
}

// OrderStateToProto convierte el estado de orden de dominio a wire.
func OrderStateToProto(s OrderState) pb.OrderState {
	switch s {
	case OrderStatePending:
		return pb.OrderStatePending
	case OrderStateActive:
		return pb.OrderStateActive
	case OrderStateCancelRequested:
		return pb.OrderStateCancelRequested
	case OrderStateCancelRejected:
		return pb.OrderStateCancelRejected
	case OrderStateCanceled:
		return pb.OrderStateCanceled
	case OrderStateExpired:
		return pb.OrderStateExpired
	case OrderStateFailed:
		return pb.OrderStateFailed
	case OrderStateHidden:
		return pb.OrderStateHidden
	case OrderStateFilled:
		return pb.OrderStateFilled
	default:
		return pb.OrderStateUnspecified
	}
}

// OrderStateFromProto convierte el estado de orden wire a dominio.
func OrderStateFromProto(s pb.OrderState) OrderState {
	switch s {
	case pb.OrderStatePending:
		return OrderStatePending
	case pb.OrderStateActive:
		return OrderStateActive
	case pb.OrderStateCancelRequested:
		return OrderStateCancelRequested
	case pb.OrderStateCancelRejected:
		return OrderStateCancelRejected
	case pb.OrderStateCanceled:
		return OrderStateCanceled
	case pb.OrderStateExpired:
		return OrderStateExpired
	case pb.OrderStateFailed:
		return OrderStateFailed
	case pb.OrderStateHidden:
		return OrderStateHidden
	case pb.OrderStateFilled:
		return OrderStateFilled
	default:
		return OrderStateUnspecified
	}
}

// TradeState es el estado del ciclo de vida de un trade.
type TradeState string

const (
	TradeStateUnspecified       TradeState = "UNSPECIFIED"
	TradeStateActive            TradeState = "ACTIVE"
	TradeStateCancelRequested   TradeState = "CANCEL_REQUESTED"
	TradeStateCancelRejected    TradeState = "CANCEL_REJECTED"
	TradeStateCanceled          TradeState = "CANCELED"
	TradeStateRecallRequested   TradeState = "RECALL_REQUESTED"
	TradeStateRecallRejected    TradeState = "RECALL_REJECTED"
	TradeStateRecalled          TradeState = "RECALLED"
	TradeStateApprovalRequested TradeState = "APPROVAL_REQUESTED"
)

// String implementa fmt.Stringer para TradeState.
func (s TradeState) String() string {
	return string(s)
}

// TradeStateToProto convierte el estado de trade de dominio a wire.
func TradeStateToProto(s TradeState) pb.TradeState {
	switch s {
	case TradeStateActive:
		return pb.TradeStateActive
	case TradeStateCancelRequested:
		return pb.TradeStateCancelRequested
	case TradeStateCancelRejected:
		return pb.TradeStateCancelRejected
	case TradeStateCanceled:
		return pb.TradeStateCanceled
	case TradeStateRecallRequested:
		return pb.TradeStateRecallRequested
	case TradeStateRecallRejected:
		return pb.TradeStateRecallRejected
	case TradeStateRecalled:
		return pb.TradeStateRecalled
	case TradeStateApprovalRequested:
		return pb.TradeStateApprovalRequested
	default:
		return pb.TradeStateUnspecified
	}
}

// TradeStateFromProto convierte el estado de trade wire a dominio.
func TradeStateFromProto(s pb.TradeState) TradeState {
	switch s {
	case pb.TradeStateActive:
		return TradeStateActive
	case pb.TradeStateCancelRequested:
		return TradeStateCancelRequested
	case pb.TradeStateCancelRejected:
		return TradeStateCancelRejected
	case pb.TradeStateCanceled:
		return TradeStateCanceled
	case pb.TradeStateRecallRequested:
		return TradeStateRecallRequested
	case pb.TradeStateRecallRejected:
		return TradeStateRecallRejected
	case pb.TradeStateRecalled:
		return TradeStateRecalled
	case pb.TradeStateApprovalRequested:
		return TradeStateApprovalRequested
	default:
		return TradeStateUnspecified
	}
}

// StateReason explica qué evento llevó una orden a su estado actual.
type StateReason string

const (
	StateReasonUnspecified      StateReason = "UNSPECIFIED"
	StateReasonAdd              StateReason = "ADD"
	StateReasonModify           StateReason = "MODIFY"
	StateReasonDelete           StateReason = "DELETE"
	StateReasonDeactivate       StateReason = "DEACTIVATE"
	StateReasonReject           StateReason = "REJECT"
	StateReasonFullExecution    StateReason = "FULL_EXECUTION"
	StateReasonPartialExecution StateReason = "PARTIAL_EXECUTION"
	StateReasonIcebergSliceAdd  StateReason = "ICEBERG_SLICE_ADD"
	StateReasonValidationFail   StateReason = "VALIDATION_FAIL"
	StateReasonUnknownState     StateReason = "UNKNOWN_STATE"
)

// String implementa fmt.Stringer para StateReason.
func (r StateReason) String() string {
	return string(r)
}

// StateReasonToProto convierte el motivo de estado de dominio a wire.
func StateReasonToProto(r StateReason) pb.StateReason {
	switch r {
	case StateReasonAdd:
		return pb.StateReasonAdd
	case StateReasonModify:
		return pb.StateReasonModify
	case StateReasonDelete:
		return pb.StateReasonDelete
	case StateReasonDeactivate:
		return pb.StateReasonDeactivate
	case StateReasonReject:
		return pb.StateReasonReject
	case StateReasonFullExecution:
		return pb.StateReasonFullExecution
	case StateReasonPartialExecution:
		return pb.StateReasonPartialExecution
	case StateReasonIcebergSliceAdd:
		return pb.StateReasonIcebergSliceAdd
	case StateReasonValidationFail:
		return pb.StateReasonValidationFail
	case StateReasonUnknownState:
		return pb.StateReasonUnknownState
	default:
		return pb.StateReasonUnspecified
	}
}

// StateReasonFromProto convierte el motivo de estado wire a dominio.
func StateReasonFromProto(r pb.StateReason) StateReason {
	switch r {
	case pb.StateReasonAdd:
		return StateReasonAdd
	case pb.StateReasonModify:
		return StateReasonModify
	case pb.StateReasonDelete:
		return StateReasonDelete
	case pb.StateReasonDeactivate:
		return StateReasonDeactivate
	case pb.StateReasonReject:
		return StateReasonReject
	case pb.StateReasonFullExecution:
		return StateReasonFullExecution
	case pb.StateReasonPartialExecution:
		return StateReasonPartialExecution
	case pb.StateReasonIcebergSliceAdd:
		return StateReasonIcebergSliceAdd
	case pb.StateReasonValidationFail:
		return StateReasonValidationFail
	case pb.StateReasonUnknownState:
		return StateReasonUnknownState
	default:
		return StateReasonUnspecified
	}
}

// MarketActor identifica quién originó un cambio de estado.
type MarketActor string

const (
	MarketActorUnspecified    MarketActor = "UNSPECIFIED"
	MarketActorUser           MarketActor = "USER"
	MarketActorMarketOperator MarketActor = "MARKET_OPERATOR"
	MarketActorSystemOperator MarketActor = "SYSTEM_OPERATOR"
)

// String implementa fmt.Stringer para MarketActor.
func (a MarketActor) String() string {
	return string(a)
}

// MarketActorToProto convierte el actor de dominio a wire.
func MarketActorToProto(a MarketActor) pb.MarketActor {
	switch a {
	case MarketActorUser:
		return pb.MarketActorUser
	case MarketActorMarketOperator:
		return pb.MarketActorMarketOperator
	case MarketActorSystemOperator:
		return pb.MarketActorSystemOperator
	default:
		return pb.MarketActorUnspecified
	}
}

// MarketActorFromProto convierte el actor wire a dominio.
func MarketActorFromProto(a pb.MarketActor) MarketActor {
	switch a {
	case pb.MarketActorUser:
		return MarketActorUser
	case pb.MarketActorMarketOperator:
		return MarketActorMarketOperator
	case pb.MarketActorSystemOperator:
		return MarketActorSystemOperator
	default:
		return MarketActorUnspecified
	}
}
