package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Order es una orden tal como se envía al mercado. Los campos
// ExecutionOption, ValidUntil y Tag tienen presencia explícita: un puntero
// nil significa "no establecido" y no viaja por el wire.
type Order struct {
	DeliveryArea    *DeliveryArea          // campo 1
	DeliveryPeriod  *DeliveryPeriod        // campo 2
	Type            OrderType              // campo 3
	Side            MarketSide             // campo 4
	Price           *Price                 // campo 5
	Quantity        *Energy                // campo 6
	ExecutionOption *OrderExecutionOption  // campo 7, opcional
	ValidUntil      *timestamppb.Timestamp // campo 8, opcional
	Tag             *string                // campo 9, opcional
}

func (m *Order) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.DeliveryArea != nil {
		if b, err = appendMessage(b, 1, m.DeliveryArea); err != nil {
			return nil, err
		}
	}
	if m.DeliveryPeriod != nil {
		if b, err = appendMessage(b, 2, m.DeliveryPeriod); err != nil {
			return nil, err
		}
	}
	if m.Type != OrderTypeUnspecified {
		b = appendVarintField(b, 3, uint64(m.Type))
	}
	if m.Side != MarketSideUnspecified {
		b = appendVarintField(b, 4, uint64(m.Side))
	}
	if m.Price != nil {
		if b, err = appendMessage(b, 5, m.Price); err != nil {
			return nil, err
		}
	}
	if m.Quantity != nil {
		if b, err = appendMessage(b, 6, m.Quantity); err != nil {
			return nil, err
		}
	}
	if m.ExecutionOption != nil {
		b = appendVarintField(b, 7, uint64(*m.ExecutionOption))
	}
	if m.ValidUntil != nil {
		if b, err = appendProto(b, 8, m.ValidUntil); err != nil {
			return nil, err
		}
	}
	if m.Tag != nil {
		b = appendStringField(b, 9, *m.Tag)
	}
	return b, nil
}

func (m *Order) UnmarshalBinary(data []byte) error {
	*m = Order{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.DeliveryArea = new(DeliveryArea)
			n, err := consumeMessage(data, m.DeliveryArea)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.DeliveryPeriod = new(DeliveryPeriod)
			n, err := consumeMessage(data, m.DeliveryPeriod)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Type = OrderType(v)
			data = data[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Side = MarketSide(v)
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			m.Price = new(Price)
			n, err := consumeMessage(data, m.Price)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 6 && typ == protowire.BytesType:
			m.Quantity = new(Energy)
			n, err := consumeMessage(data, m.Quantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 7 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			opt := OrderExecutionOption(v)
			m.ExecutionOption = &opt
			data = data[n:]
		case num == 8 && typ == protowire.BytesType:
			m.ValidUntil = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.ValidUntil)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 9 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.Tag = &v
			data = data[n:]
		default:
			n, err := skipField(data, num, typ)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// UpdateOrder es el parche de una orden existente. Todos los campos son
// opcionales; solo los punteros no nil viajan por el wire, de modo que el
// servidor distingue "no tocar" de "poner en cero".
type UpdateOrder struct {
	Price           *Price                 // campo 1
	Quantity        *Energy                // campo 2
	ExecutionOption *OrderExecutionOption  // campo 3
	ValidUntil      *timestamppb.Timestamp // campo 4
	Tag             *string                // campo 5
}

func (m *UpdateOrder) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Price != nil {
		if b, err = appendMessage(b, 1, m.Price); err != nil {
			return nil, err
		}
	}
	if m.Quantity != nil {
		if b, err = appendMessage(b, 2, m.Quantity); err != nil {
			return nil, err
		}
	}
	if m.ExecutionOption != nil {
		b = appendVarintField(b, 3, uint64(*m.ExecutionOption))
	}
	if m.ValidUntil != nil {
		if b, err = appendProto(b, 4, m.ValidUntil); err != nil {
			return nil, err
		}
	}
	if m.Tag != nil {
		b = appendStringField(b, 5, *m.Tag)
	}
	return b, nil
}

func (m *UpdateOrder) UnmarshalBinary(data []byte) error {
	*m = UpdateOrder{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Price = new(Price)
			n, err := consumeMessage(data, m.Price)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Quantity = new(Energy)
			n, err := consumeMessage(data, m.Quantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			opt := OrderExecutionOption(v)
			m.ExecutionOption = &opt
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.ValidUntil = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.ValidUntil)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.Tag = &v
			data = data[n:]
		default:
			n, err := skipField(data, num, typ)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// StateDetail describe el estado de una orden junto con el motivo del último
// cambio y quién lo originó.
type StateDetail struct {
	State       OrderState  // campo 1
	StateReason StateReason // campo 2
	MarketActor MarketActor // campo 3
}

func (m *StateDetail) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.State != OrderStateUnspecified {
		b = appendVarintField(b, 1, uint64(m.State))
	}
	if m.StateReason != StateReasonUnspecified {
		b = appendVarintField(b, 2, uint64(m.StateReason))
	}
	if m.MarketActor != MarketActorUnspecified {
		b = appendVarintField(b, 3, uint64(m.MarketActor))
	}
	return b, nil
}

func (m *StateDetail) UnmarshalBinary(data []byte) error {
	*m = StateDetail{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.State = OrderState(v)
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.StateReason = StateReason(v)
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.MarketActor = MarketActor(v)
			data = data[n:]
		default:
			n, err := skipField(data, num, typ)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// OrderDetail es la vista completa de una orden que mantiene el servidor:
// la orden original más identidad, estado y cantidades de ejecución.
type OrderDetail struct {
	OrderID          uint64                 // campo 1
	Order            *Order                 // campo 2
	StateDetail      *StateDetail           // campo 3
	OpenQuantity     *Energy                // campo 4
	FilledQuantity   *Energy                // campo 5
	CreateTime       *timestamppb.Timestamp // campo 6
	ModificationTime *timestamppb.Timestamp // campo 7
}

func (m *OrderDetail) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.OrderID != 0 {
		b = appendVarintField(b, 1, m.OrderID)
	}
	if m.Order != nil {
		if b, err = appendMessage(b, 2, m.Order); err != nil {
			return nil, err
		}
	}
	if m.StateDetail != nil {
		if b, err = appendMessage(b, 3, m.StateDetail); err != nil {
			return nil, err
		}
	}
	if m.OpenQuantity != nil {
		if b, err = appendMessage(b, 4, m.OpenQuantity); err != nil {
			return nil, err
		}
	}
	if m.FilledQuantity != nil {
		if b, err = appendMessage(b, 5, m.FilledQuantity); err != nil {
			return nil, err
		}
	}
	if m.CreateTime != nil {
		if b, err = appendProto(b, 6, m.CreateTime); err != nil {
			return nil, err
		}
	}
	if m.ModificationTime != nil {
		if b, err = appendProto(b, 7, m.ModificationTime); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *OrderDetail) UnmarshalBinary(data []byte) error {
	*m = OrderDetail{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.OrderID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Order = new(Order)
			n, err := consumeMessage(data, m.Order)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			m.StateDetail = new(StateDetail)
			n, err := consumeMessage(data, m.StateDetail)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.OpenQuantity = new(Energy)
			n, err := consumeMessage(data, m.OpenQuantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			m.FilledQuantity = new(Energy)
			n, err := consumeMessage(data, m.FilledQuantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 6 && typ == protowire.BytesType:
			m.CreateTime = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.CreateTime)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 7 && typ == protowire.BytesType:
			m.ModificationTime = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.ModificationTime)
			if err != nil {
				return err
			}
			data = data[n:]
		default:
			n, err := skipField(data, num, typ)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}
