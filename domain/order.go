package domain

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridmarket/pb"
)

// Order es una orden lista para enviarse al mercado. ExecutionOption,
// ValidUntil y Tag son opcionales: nil significa "no establecido".
type Order struct {
	DeliveryArea    DeliveryArea
	DeliveryPeriod  DeliveryPeriod
	Type            OrderType
	Side            MarketSide
	Price           Price
	Quantity        Energy
	ExecutionOption *OrderExecutionOption
	ValidUntil      *time.Time
	Tag             *string
}

// ToProto convierte la orden a su mensaje wire. Los opcionales nil no
// aparecen en el mensaje.
func (o Order) ToProto() *pb.Order {
	msg := &pb.Order{
		DeliveryArea:   o.DeliveryArea.ToProto(),
		DeliveryPeriod: o.DeliveryPeriod.ToProto(),
		Type:           OrderTypeToProto(o.Type),
		Side:           MarketSideToProto(o.Side),
		Price:          o.Price.ToProto(),
		Quantity:       o.Quantity.ToProto(),
	}
	if o.ExecutionOption != nil {
		opt := OrderExecutionOptionToProto(*o.ExecutionOption)
		msg.ExecutionOption = &opt
	}
	if o.ValidUntil != nil {
		msg.ValidUntil = timestamppb.New(o.ValidUntil.UTC())
	}
	if o.Tag != nil {
		tag := *o.Tag
		msg.Tag = &tag
	}
	return msg
}

// OrderFromProto convierte un mensaje wire a Order. Campos obligatorios
// ausentes producen error.
func OrderFromProto(msg *pb.Order) (Order, error) {
	if msg == nil {
		return Order{}, NewValidationError("order", nil, "order message is missing")
	}

	price, err := PriceFromProto(msg.Price)
	if err != nil {
		return Order{}, err
	}
	quantity, err := EnergyFromProto(msg.Quantity)
	if err != nil {
		return Order{}, err
	}
	period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
	if err != nil {
		return Order{}, err
	}

	order := Order{
		DeliveryArea:   DeliveryAreaFromProto(msg.DeliveryArea),
		DeliveryPeriod: period,
		Type:           OrderTypeFromProto(msg.Type),
		Side:           MarketSideFromProto(msg.Side),
		Price:          price,
		Quantity:       quantity,
	}

	if msg.ExecutionOption != nil {
		opt := OrderExecutionOptionFromProto(*msg.ExecutionOption)
		order.ExecutionOption = &opt
	}
	if msg.ValidUntil != nil {
		validUntil := msg.ValidUntil.AsTime()
		order.ValidUntil = &validUntil
	}
	if msg.Tag != nil {
		tag := *msg.Tag
		order.Tag = &tag
	}

	return order, nil
}

// UpdateOrder es un parche sobre una orden existente. Solo los campos no
// nil se transmiten; el resto queda intacto en el servidor.
type UpdateOrder struct {
	Price           *Price
	Quantity        *Energy
	ExecutionOption *OrderExecutionOption
	ValidUntil      *time.Time
	Tag             *string
}

// IsEmpty indica si el parche no establece ningún campo.
func (u UpdateOrder) IsEmpty() bool {
	return u.Price == nil && u.Quantity == nil && u.ExecutionOption == nil &&
		u.ValidUntil == nil && u.Tag == nil
}

// FieldMaskPaths retorna los paths de los campos establecidos, en el orden
// canónico del mensaje wire. Alimenta el FieldMask del update.
func (u UpdateOrder) FieldMaskPaths() []string {
	var paths []string
	if u.Price != nil {
		paths = append(paths, "price")
	}
	if u.Quantity != nil {
		paths = append(paths, "quantity")
	}
	if u.ExecutionOption != nil {
		paths = append(paths, "execution_option")
	}
	if u.ValidUntil != nil {
		paths = append(paths, "valid_until")
	}
	if u.Tag != nil {
		paths = append(paths, "tag")
	}
	return paths
}

// ToProto convierte el parche a su mensaje wire con solo los campos
// establecidos presentes.
func (u UpdateOrder) ToProto() *pb.UpdateOrder {
	msg := &pb.UpdateOrder{}
	if u.Price != nil {
		msg.Price = u.Price.ToProto()
	}
	if u.Quantity != nil {
		msg.Quantity = u.Quantity.ToProto()
	}
	if u.ExecutionOption != nil {
		opt := OrderExecutionOptionToProto(*u.ExecutionOption)
		msg.ExecutionOption = &opt
	}
	if u.ValidUntil != nil {
		msg.ValidUntil = timestamppb.New(u.ValidUntil.UTC())
	}
	if u.Tag != nil {
		tag := *u.Tag
		msg.Tag = &tag
	}
	return msg
}

// UpdateOrderFromProto convierte un mensaje wire a UpdateOrder.
func UpdateOrderFromProto(msg *pb.UpdateOrder) (UpdateOrder, error) {
	if msg == nil {
		return UpdateOrder{}, nil
	}

	var update UpdateOrder
	if msg.Price != nil {
		price, err := PriceFromProto(msg.Price)
		if err != nil {
			return UpdateOrder{}, err
		}
		update.Price = &price
	}
	if msg.Quantity != nil {
		quantity, err := EnergyFromProto(msg.Quantity)
		if err != nil {
			return UpdateOrder{}, err
		}
		update.Quantity = &quantity
	}
	if msg.ExecutionOption != nil {
		opt := OrderExecutionOptionFromProto(*msg.ExecutionOption)
		update.ExecutionOption = &opt
	}
	if msg.ValidUntil != nil {
		validUntil := msg.ValidUntil.AsTime()
		update.ValidUntil = &validUntil
	}
	if msg.Tag != nil {
		tag := *msg.Tag
		update.Tag = &tag
	}

	return update, nil
}

// StateDetail describe el estado de una orden, el motivo del último cambio
// y quién lo originó.
type StateDetail struct {
	State       OrderState
	StateReason StateReason
	MarketActor MarketActor
}

// ToProto convierte el detalle de estado a su mensaje wire.
func (s StateDetail) ToProto() *pb.StateDetail {
	return &pb.StateDetail{
		State:       OrderStateToProto(s.State),
		StateReason: StateReasonToProto(s.StateReason),
		MarketActor: MarketActorToProto(s.MarketActor),
	}
}

// StateDetailFromProto convierte un mensaje wire a StateDetail.
func StateDetailFromProto(msg *pb.StateDetail) StateDetail {
	if msg == nil {
		return StateDetail{
			State:       OrderStateUnspecified,
			StateReason: StateReasonUnspecified,
			MarketActor: MarketActorUnspecified,
		}
	}
	return StateDetail{
		State:       OrderStateFromProto(msg.State),
		StateReason: StateReasonFromProto(msg.StateReason),
		MarketActor: MarketActorFromProto(msg.MarketActor),
	}
}

// OrderDetail es la vista completa que el servidor mantiene de una orden:
// la orden original más identidad, estado y cantidades de ejecución. Los
// timestamps llegan en UTC y se rechazan si faltan.
type OrderDetail struct {
	OrderID          uint64
	Order            Order
	StateDetail      StateDetail
	OpenQuantity     Energy
	FilledQuantity   Energy
	CreateTime       time.Time
	ModificationTime time.Time
}

// ToProto convierte el detalle de orden a su mensaje wire.
func (d OrderDetail) ToProto() *pb.OrderDetail {
	return &pb.OrderDetail{
		OrderID:          d.OrderID,
		Order:            d.Order.ToProto(),
		StateDetail:      d.StateDetail.ToProto(),
		OpenQuantity:     d.OpenQuantity.ToProto(),
		FilledQuantity:   d.FilledQuantity.ToProto(),
		CreateTime:       timestamppb.New(d.CreateTime.UTC()),
		ModificationTime: timestamppb.New(d.ModificationTime.UTC()),
	}
}

// OrderDetailFromProto convierte un mensaje wire a OrderDetail.
//
// La relación open_quantity + filled_quantity no se revalida aquí: se
// confía en el servidor.
func OrderDetailFromProto(msg *pb.OrderDetail) (OrderDetail, error) {
	if msg == nil {
		return OrderDetail{}, NewValidationError("order_detail", nil, "order detail message is missing")
	}

	order, err := OrderFromProto(msg.Order)
	if err != nil {
		return OrderDetail{}, err
	}
	openQty, err := EnergyFromProto(msg.OpenQuantity)
	if err != nil {
		return OrderDetail{}, err
	}
	filledQty, err := EnergyFromProto(msg.FilledQuantity)
	if err != nil {
		return OrderDetail{}, err
	}

	if msg.CreateTime == nil {
		return OrderDetail{}, NewValidationError("create_time", nil, "timestamp must be set and timezone-aware")
	}
	if msg.ModificationTime == nil {
		return OrderDetail{}, NewValidationError("modification_time", nil, "timestamp must be set and timezone-aware")
	}

	return OrderDetail{
		OrderID:          msg.OrderID,
		Order:            order,
		StateDetail:      StateDetailFromProto(msg.StateDetail),
		OpenQuantity:     openQty,
		FilledQuantity:   filledQty,
		CreateTime:       msg.CreateTime.AsTime(),
		ModificationTime: msg.ModificationTime.AsTime(),
	}, nil
}
