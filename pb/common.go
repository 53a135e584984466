package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"

	decimalpb "google.golang.org/genproto/googleapis/type/decimal"
)

// Price es un precio con su moneda. El monto viaja como decimal textual
// para preservar precisión exacta de punta a punta.
type Price struct {
	Amount   *decimalpb.Decimal // campo 1
	Currency Currency           // campo 2
}

func (m *Price) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Amount != nil {
		if b, err = appendProto(b, 1, m.Amount); err != nil {
			return nil, err
		}
	}
	if m.Currency != CurrencyUnspecified {
		b = appendVarintField(b, 2, uint64(m.Currency))
	}
	return b, nil
}

func (m *Price) UnmarshalBinary(data []byte) error {
	*m = Price{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Amount = new(decimalpb.Decimal)
			n, err := consumeProto(data, m.Amount)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Currency = Currency(v)
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

// Energy es una cantidad de energía expresada en MWh.
type Energy struct {
	MWh *decimalpb.Decimal // campo 1
}

func (m *Energy) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.MWh != nil {
		if b, err = appendProto(b, 1, m.MWh); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Energy) UnmarshalBinary(data []byte) error {
	*m = Energy{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.MWh = new(decimalpb.Decimal)
			n, err := consumeProto(data, m.MWh)
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

// DeliveryArea identifica el área geográfica de entrega mediante un código
// y el esquema bajo el cual ese código se interpreta.
type DeliveryArea struct {
	Code     string               // campo 1
	CodeType EnergyMarketCodeType // campo 2
}

func (m *DeliveryArea) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.Code != "" {
		b = appendStringField(b, 1, m.Code)
	}
	if m.CodeType != EnergyMarketCodeTypeUnspecified {
		b = appendVarintField(b, 2, uint64(m.CodeType))
	}
	return b, nil
}

func (m *DeliveryArea) UnmarshalBinary(data []byte) error {
	*m = DeliveryArea{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return err
			}
			m.Code = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.CodeType = EnergyMarketCodeType(v)
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

// DeliveryPeriod es la ventana de entrega: inicio UTC más duración estándar.
type DeliveryPeriod struct {
	Start    *timestamppb.Timestamp // campo 1
	Duration DeliveryDuration       // campo 2
}

func (m *DeliveryPeriod) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Start != nil {
		if b, err = appendProto(b, 1, m.Start); err != nil {
			return nil, err
		}
	}
	if m.Duration != DeliveryDurationUnspecified {
		b = appendVarintField(b, 2, uint64(m.Duration))
	}
	return b, nil
}

func (m *DeliveryPeriod) UnmarshalBinary(data []byte) error {
	*m = DeliveryPeriod{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Start = new(timestamppb.Timestamp)
			n, err := consumeProto(data, m.Start)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.Duration = DeliveryDuration(v)
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
