package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// GridpoolOrderFilter restringe qué órdenes retorna un listado o un stream.
// Un filtro vacío no restringe nada. Side y Tag tienen presencia explícita
// para distinguir "sin filtro" de un valor concreto.
type GridpoolOrderFilter struct {
	States         []OrderState    // campo 1, packed
	Side           *MarketSide     // campo 2, opcional
	DeliveryPeriod *DeliveryPeriod // campo 3
	DeliveryArea   *DeliveryArea   // campo 4
	Tag            *string         // campo 5, opcional
}

func (m *GridpoolOrderFilter) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if len(m.States) > 0 {
		vals := make([]uint64, len(m.States))
		for i, s := range m.States {
			vals[i] = uint64(s)
		}
		b = appendPackedVarints(b, 1, vals)
	}
	if m.Side != nil {
		b = appendVarintField(b, 2, uint64(*m.Side))
	}
	if m.DeliveryPeriod != nil {
		if b, err = appendMessage(b, 3, m.DeliveryPeriod); err != nil {
			return nil, err
		}
	}
	if m.DeliveryArea != nil {
		if b, err = appendMessage(b, 4, m.DeliveryArea); err != nil {
			return nil, err
		}
	}
	if m.Tag != nil {
		b = appendStringField(b, 5, *m.Tag)
	}
	return b, nil
}

func (m *GridpoolOrderFilter) UnmarshalBinary(data []byte) error {
	*m = GridpoolOrderFilter{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && (typ == protowire.BytesType || typ == protowire.VarintType):
			vals, n, err := consumeRepeatedVarints(data, typ, nil)
			if err != nil {
				return err
			}
			for _, v := range vals {
				m.States = append(m.States, OrderState(v))
			}
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			side := MarketSide(v)
			m.Side = &side
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			m.DeliveryPeriod = new(DeliveryPeriod)
			n, err := consumeMessage(data, m.DeliveryPeriod)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.DeliveryArea = new(DeliveryArea)
			n, err := consumeMessage(data, m.DeliveryArea)
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

// GridpoolTradeFilter restringe qué trades propios retorna un listado o un
// stream. Un filtro vacío no restringe nada.
type GridpoolTradeFilter struct {
	States         []TradeState    // campo 1, packed
	TradeIDs       []uint64        // campo 2, packed
	Side           *MarketSide     // campo 3, opcional
	DeliveryPeriod *DeliveryPeriod // campo 4
	DeliveryArea   *DeliveryArea   // campo 5
}

func (m *GridpoolTradeFilter) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if len(m.States) > 0 {
		vals := make([]uint64, len(m.States))
		for i, s := range m.States {
			vals[i] = uint64(s)
		}
		b = appendPackedVarints(b, 1, vals)
	}
	if len(m.TradeIDs) > 0 {
		b = appendPackedVarints(b, 2, m.TradeIDs)
	}
	if m.Side != nil {
		b = appendVarintField(b, 3, uint64(*m.Side))
	}
	if m.DeliveryPeriod != nil {
		if b, err = appendMessage(b, 4, m.DeliveryPeriod); err != nil {
			return nil, err
		}
	}
	if m.DeliveryArea != nil {
		if b, err = appendMessage(b, 5, m.DeliveryArea); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GridpoolTradeFilter) UnmarshalBinary(data []byte) error {
	*m = GridpoolTradeFilter{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && (typ == protowire.BytesType || typ == protowire.VarintType):
			vals, n, err := consumeRepeatedVarints(data, typ, nil)
			if err != nil {
				return err
			}
			for _, v := range vals {
				m.States = append(m.States, TradeState(v))
			}
			data = data[n:]
		case num == 2 && (typ == protowire.BytesType || typ == protowire.VarintType):
			vals, n, err := consumeRepeatedVarints(data, typ, m.TradeIDs)
			if err != nil {
				return err
			}
			m.TradeIDs = vals
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			side := MarketSide(v)
			m.Side = &side
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.DeliveryPeriod = new(DeliveryPeriod)
			n, err := consumeMessage(data, m.DeliveryPeriod)
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

// PublicTradeFilter restringe qué trades públicos retorna un listado o un
// stream. Las áreas de compra y venta se filtran por separado.
type PublicTradeFilter struct {
	States           []TradeState    // campo 1, packed
	BuyDeliveryArea  *DeliveryArea   // campo 2
	SellDeliveryArea *DeliveryArea   // campo 3
	DeliveryPeriod   *DeliveryPeriod // campo 4
}

func (m *PublicTradeFilter) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if len(m.States) > 0 {
		vals := make([]uint64, len(m.States))
		for i, s := range m.States {
			vals[i] = uint64(s)
		}
		b = appendPackedVarints(b, 1, vals)
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
	return b, nil
}

func (m *PublicTradeFilter) UnmarshalBinary(data []byte) error {
	*m = PublicTradeFilter{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && (typ == protowire.BytesType || typ == protowire.VarintType):
			vals, n, err := consumeRepeatedVarints(data, typ, nil)
			if err != nil {
				return err
			}
			for _, v := range vals {
				m.States = append(m.States, TradeState(v))
			}
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
