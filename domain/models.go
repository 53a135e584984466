// Package domain provee modelos de dominio y lógica de negocio del mercado
// eléctrico intradiario.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	decimalpb "google.golang.org/genproto/googleapis/type/decimal"

	"github.com/xKoRx/gridmarket/pb"
)

// Price es un precio con su moneda. El monto es un decimal de precisión
// arbitraria; nunca float binario.
type Price struct {
	Amount   decimal.Decimal
	Currency Currency
}

// String implementa fmt.Stringer para Price.
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.Amount, p.Currency)
}

// ToProto convierte el precio a su mensaje wire.
func (p Price) ToProto() *pb.Price {
	return &pb.Price{
		Amount:   &decimalpb.Decimal{Value: p.Amount.String()},
		Currency: CurrencyToProto(p.Currency),
	}
}

// PriceFromProto convierte un mensaje wire a Price.
func PriceFromProto(msg *pb.Price) (Price, error) {
	if msg == nil || msg.Amount == nil {
		return Price{}, NewValidationError("price", nil, "price amount is missing")
	}
	amount, err := ParseDecimal(msg.Amount.Value, "price")
	if err != nil {
		return Price{}, err
	}
	return Price{
		Amount:   amount,
		Currency: CurrencyFromProto(msg.Currency),
	}, nil
}

// Energy es una cantidad de energía en MWh.
type Energy struct {
	MWh decimal.Decimal
}

// String implementa fmt.Stringer para Energy.
func (e Energy) String() string {
	return fmt.Sprintf("%s MWh", e.MWh)
}

// ToProto convierte la cantidad a su mensaje wire.
func (e Energy) ToProto() *pb.Energy {
	return &pb.Energy{
		MWh: &decimalpb.Decimal{Value: e.MWh.String()},
	}
}

// EnergyFromProto convierte un mensaje wire a Energy.
func EnergyFromProto(msg *pb.Energy) (Energy, error) {
	if msg == nil || msg.MWh == nil {
		return Energy{}, NewValidationError("energy", nil, "energy quantity is missing")
	}
	mwh, err := ParseDecimal(msg.MWh.Value, "energy")
	if err != nil {
		return Energy{}, err
	}
	return Energy{MWh: mwh}, nil
}

// DeliveryArea identifica el área geográfica de entrega.
type DeliveryArea struct {
	Code     string
	CodeType EnergyMarketCodeType
}

// NewDeliveryArea crea un área de entrega validando que el código no esté
// vacío cuando el esquema está especificado.
func NewDeliveryArea(code string, codeType EnergyMarketCodeType) (DeliveryArea, error) {
	if code == "" && codeType != EnergyMarketCodeTypeUnspecified {
		return DeliveryArea{}, NewValidationError("delivery_area", code,
			"code cannot be empty when code type is specified")
	}
	return DeliveryArea{Code: code, CodeType: codeType}, nil
}

// ToProto convierte el área a su mensaje wire.
func (a DeliveryArea) ToProto() *pb.DeliveryArea {
	return &pb.DeliveryArea{
		Code:     a.Code,
		CodeType: EnergyMarketCodeTypeToProto(a.CodeType),
	}
}

// DeliveryAreaFromProto convierte un mensaje wire a DeliveryArea. Los datos
// del servidor se aceptan tal cual llegan.
func DeliveryAreaFromProto(msg *pb.DeliveryArea) DeliveryArea {
	if msg == nil {
		return DeliveryArea{}
	}
	return DeliveryArea{
		Code:     msg.Code,
		CodeType: EnergyMarketCodeTypeFromProto(msg.CodeType),
	}
}

// DeliveryPeriod es la ventana de entrega de una orden o trade. Start se
// normaliza a UTC en el constructor y Duration debe coincidir con un bucket
// del mercado.
type DeliveryPeriod struct {
	Start    time.Time
	Duration time.Duration
}

// NewDeliveryPeriod crea un período de entrega validado.
//
// Example:
//
//	period, err := domain.NewDeliveryPeriod(start, 15*time.Minute)
func NewDeliveryPeriod(start time.Time, duration time.Duration) (DeliveryPeriod, error) {
	normalized, err := ValidateTimestamp(start, "delivery_period.start")
	if err != nil {
		return DeliveryPeriod{}, err
	}
	if err := ValidateDeliveryDuration(duration); err != nil {
		return DeliveryPeriod{}, err
	}
	return DeliveryPeriod{Start: normalized, Duration: duration}, nil
}

// String implementa fmt.Stringer para DeliveryPeriod.
func (p DeliveryPeriod) String() string {
	return fmt.Sprintf("%s +%s", p.Start.Format(time.RFC3339), p.Duration)
}

// ToProto convierte el período a su mensaje wire.
func (p DeliveryPeriod) ToProto() *pb.DeliveryPeriod {
	return &pb.DeliveryPeriod{
		Start:    timestamppb.New(p.Start),
		Duration: DeliveryDurationToProto(p.Duration),
	}
}

// DeliveryPeriodFromProto convierte un mensaje wire a DeliveryPeriod.
func DeliveryPeriodFromProto(msg *pb.DeliveryPeriod) (DeliveryPeriod, error) {
	if msg == nil || msg.Start == nil {
		return DeliveryPeriod{}, NewValidationError("delivery_period", nil, "delivery period start is missing")
	}
	return DeliveryPeriod{
		Start:    msg.Start.AsTime(),
		Duration: DeliveryDurationFromProto(msg.Duration),
	}, nil
}

// DeliveryDurationToProto mapea una duración Go al bucket wire del mercado.
// Duraciones fuera de los buckets mapean a UNSPECIFIED; ValidateDeliveryDuration
// es quien las rechaza antes de llegar aquí.
func DeliveryDurationToProto(d time.Duration) pb.DeliveryDuration {
	switch d {
	case 5 * time.Minute:
		return pb.DeliveryDuration5Min
	case 15 * time.Minute:
		return pb.DeliveryDuration15Min
	case 30 * time.Minute:
		return pb.DeliveryDuration30Min
	case 60 * time.Minute:
		return pb.DeliveryDuration60Min
	default:
		return pb.DeliveryDurationUnspecified
	}
}

// DeliveryDurationFromProto mapea un bucket wire a duración Go. Buckets
// desconocidos mapean a cero.
func DeliveryDurationFromProto(d pb.DeliveryDuration) time.Duration {
	switch d {
	case pb.DeliveryDuration5Min:
		return 5 * time.Minute
	case pb.DeliveryDuration15Min:
		return 15 * time.Minute
	case pb.DeliveryDuration30Min:
		return 30 * time.Minute
	case pb.DeliveryDuration60Min:
		return 60 * time.Minute
	default:
		return 0
	}
}
