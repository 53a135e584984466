package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Trade es una ejecución privada de una orden del gridpool.
type Trade struct {
	ID             uint64                 // campo 1
	OrderID        uint64                 // campo 2
	Side           MarketSide             // campo 3
	ExecutionTime  *timestamppb.Timestamp // campo 4
	DeliveryArea   *DeliveryArea          // campo 5
	DeliveryPeriod *DeliveryPeriod        // campo 6
	Price          *Price                 // campo 7
	Quantity       *Energy                // campo 8
	State          TradeState             // campo 9
}

func (m *Trade) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.ID != 0 {
		b = appendVarintField(b, 1, m.ID)
	}
	if m.OrderID != 0 {
		b = appendVarintField(b, 2, m.OrderID)
	}
	if m.Side != MarketSideUnspecified {
		b = appendVarintField(b, 3, uint64(m.Side))
	}
	if m.ExecutionTime != nil {
		if b, err = appendProto(b, 4, m.ExecutionTime); err != nil {
			return nil, err
		}
	}
	if m.DeliveryArea != nil {
		if b, err = appendMessage(b, 5, m.DeliveryArea); err != nil {
			return nil, err
		}
	}
	if m.DeliveryPeriod != nil {
		if b, err = appendMessage(b, 6, m.DeliveryPeriod); err != nil {
			return nil, err
		}
	}
	if m.Price != nil {
		if b, err = appendMessage(b, 7, m.Price); err != nil {
			return nil, err
		}
	}
	if m.Quantity != nil {
		if b, err = appendMessage(b, 8, m.Quantity); err != nil {
			return nil, err
		}
	}
	if m.State != TradeStateUnspecified {
		b = appendVarintField(b, 9, uint64(m.State))
	}
	return b, nil
}

func (m *Trade) UnmarshalBinary(data []byte) error {
	*m = Trade{}
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
			m.ID = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.OrderID = v
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Side = MarketSide(v)
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.ExecutionTime = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.ExecutionTime)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			m.DeliveryArea = new(DeliveryArea)
			n, err := consumeMessage(data, m.DeliveryArea)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 6 && typ == protowire.BytesType:
			m.DeliveryPeriod = new(DeliveryPeriod)
			n, err := consumeMessage(data, m.DeliveryPeriod)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 7 && typ == protowire.BytesType:
			m.Price = new(Price)
			n, err := consumeMessage(data, m.Price)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 8 && typ == protowire.BytesType:
			m.Quantity = new(Energy)
			n, err := consumeMessage(data, m.Quantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 9 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.State = TradeState(v)
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

// PublicTrade es una ejecución anónima del mercado completo. A diferencia de
// Trade no referencia órdenes propias y lleva las áreas de compra y venta.
type PublicTrade struct {
	ID               uint64                 // campo 1
	BuyDeliveryArea  *DeliveryArea          // campo 2
	SellDeliveryArea *DeliveryArea          // campo 3
	DeliveryPeriod   *DeliveryPeriod        // campo 4
	ExecutionTime    *timestamppb.Timestamp // campo 5
	Price            *Price                 // campo 6
	Quantity         *Energy                // campo 7
	State            TradeState             // campo 8
}

func (m *PublicTrade) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.ID != 0 {
		b = appendVarintField(b, 1, m.ID)
	}
	if m.BuyDeliveryArea != nil {
		if b, err = appendMessage(b, 2, m.BuyDeliveryArea); err != nil {
			return nil, err
		}
	}
	if m.SellDeliveryArea != nil {
		if b, err = appendMessage(b, 3, m.SellDeliveryArea); err != nil {
			return nil, err
		}
	}
	if m.DeliveryPeriod != nil {
		if b, err = appendMessage(b, 4, m.DeliveryPeriod); err != nil {
			return nil, err
		}
	}
	if m.ExecutionTime != nil {
		if b, err = appendProto(b, 5, m.ExecutionTime); err != nil {
			return nil, err
		}
	}
	if m.Price != nil {
		if b, err = appendMessage(b, 6, m.Price); err != nil {
			return nil, err
		}
	}
	if m.Quantity != nil {
		if b, err = appendMessage(b, 7, m.Quantity); err != nil {
			return nil, err
		}
	}
	if m.State != TradeStateUnspecified {
		b = appendVarintField(b, 8, uint64(m.State))
	}
	return b, nil
}

func (m *PublicTrade) UnmarshalBinary(data []byte) error {
	*m = PublicTrade{}
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
			m.ID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.BuyDeliveryArea = new(DeliveryArea)
			n, err := consumeMessage(data, m.BuyDeliveryArea)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			m.SellDeliveryArea = new(DeliveryArea)
			n, err := consumeMessage(data, m.SellDeliveryArea)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.DeliveryPeriod = new(DeliveryPeriod)
			n, err := consumeMessage(data, m.DeliveryPeriod)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 5 && typ == protowire.BytesType:
			m.ExecutionTime = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.ExecutionTime)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 6 && typ == protowire.BytesType:
			m.Price = new(Price)
			n, err := consumeMessage(data, m.Price)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 7 && typ == protowire.BytesType:
			m.Quantity = new(Energy)
			n, err := consumeMessage(data, m.Quantity)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 8 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.State = TradeState(v)
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
