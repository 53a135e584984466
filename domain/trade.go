package domain

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridmarket/pb"
)

// Trade es una ejecución privada contra una orden propia del gridpool.
type Trade struct {
	ID             uint64
	OrderID        uint64
	Side           MarketSide
	ExecutionTime  time.Time
	DeliveryArea   DeliveryArea
	DeliveryPeriod DeliveryPeriod
	Price          Price
	Quantity       Energy
	State          TradeState
}

// ToProto convierte el trade a su mensaje wire.
func (t Trade) ToProto() *pb.Trade {
	return &pb.Trade{
		ID:             t.ID,
		OrderID:        t.OrderID,
		Side:           MarketSideToProto(t.Side),
		ExecutionTime:  timestamppb.New(t.ExecutionTime.UTC()),
		DeliveryArea:   t.DeliveryArea.ToProto(),
		DeliveryPeriod: t.DeliveryPeriod.ToProto(),
		Price:          t.Price.ToProto(),
		Quantity:       t.Quantity.ToProto(),
		State:          TradeStateToProto(t.State),
	}
}

// TradeFromProto convierte un mensaje wire a Trade.
func TradeFromProto(msg *pb.Trade) (Trade, error) {
	if msg == nil {
		return Trade{}, NewValidationError("trade", nil, "trade message is missing")
	}

	price, err := PriceFromProto(msg.Price)
	if err != nil {
		return Trade{}, err
	}
	quantity, err := EnergyFromProto(msg.Quantity)
	if err != nil {
		return Trade{}, err
	}
	period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
	if err != nil {
		return Trade{}, err
	}
	if msg.ExecutionTime == nil {
		return Trade{}, NewValidationError("execution_time", nil, "timestamp must be set and timezone-aware")
	}

	return Trade{
		ID:             msg.ID,
		OrderID:        msg.OrderID,
		Side:           MarketSideFromProto(msg.Side),
		ExecutionTime:  msg.ExecutionTime.AsTime(),
		DeliveryArea:   DeliveryAreaFromProto(msg.DeliveryArea),
		DeliveryPeriod: period,
		Price:          price,
		Quantity:       quantity,
		State:          TradeStateFromProto(msg.State),
	}, nil
}

// PublicTrade es una ejecución anónima del mercado completo. No referencia
// órdenes propias y lleva las áreas de compra y venta por separado.
type PublicTrade struct {
	ID               uint64
	BuyDeliveryArea  DeliveryArea
	SellDeliveryArea DeliveryArea
	DeliveryPeriod   DeliveryPeriod
	ExecutionTime    time.Time
	Price            Price
	Quantity         Energy
	State            TradeState
}

// ToProto convierte el trade público a su mensaje wire.
func (t PublicTrade) ToProto() *pb.PublicTrade {
	return &pb.PublicTrade{
		ID:               t.ID,
		BuyDeliveryArea:  t.BuyDeliveryArea.ToProto(),
		SellDeliveryArea: t.SellDeliveryArea.ToProto(),
		DeliveryPeriod:   t.DeliveryPeriod.ToProto(),
		ExecutionTime:    timestamppb.New(t.ExecutionTime.UTC()),
		Price:            t.Price.ToProto(),
		Quantity:         t.Quantity.ToProto(),
		State:            TradeStateToProto(t.State),
	}
}

// PublicTradeFromProto convierte un mensaje wire a PublicTrade.
func PublicTradeFromProto(msg *pb.PublicTrade) (PublicTrade, error) {
	if msg == nil {
		return PublicTrade{}, NewValidationError("public_trade", nil, "public trade message is missing")
	}

	price, err := PriceFromProto(msg.Price)
	if err != nil {
		return PublicTrade{}, err
	}
	quantity, err := EnergyFromProto(msg.Quantity)
	if err != nil {
		return PublicTrade{}, err
	}
	period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
	if err != nil {
		return PublicTrade{}, err
	}
	if msg.ExecutionTime == nil {
		return PublicTrade{}, NewValidationError("execution_time", nil, "timestamp must be set and timezone-aware")
	}

	return PublicTrade{
		ID:               msg.ID,
		BuyDeliveryArea:  DeliveryAreaFromProto(msg.BuyDeliveryArea),
		SellDeliveryArea: DeliveryAreaFromProto(msg.SellDeliveryArea),
		DeliveryPeriod:   period,
		ExecutionTime:    msg.ExecutionTime.AsTime(),
		Price:            price,
		Quantity:         quantity,
		State:            TradeStateFromProto(msg.State),
	}, nil
}
