package domain

import (
	"github.com/xKoRx/gridmarket/pb"
)

// GridpoolOrderFilter restringe listados y streams de órdenes. Todos los
// campos son opcionales; el filtro vacío coincide con todo.
type GridpoolOrderFilter struct {
	OrderStates    []OrderState
	Side           *MarketSide
	DeliveryPeriod *DeliveryPeriod
	DeliveryArea   *DeliveryArea
	Tag            *string
}

// ToProto convierte el filtro a su mensaje wire. Los campos no establecidos
// no aparecen, nunca se envía un valor por defecto que el servidor pueda
// confundir con un filtro explícito.
func (f GridpoolOrderFilter) ToProto() *pb.GridpoolOrderFilter {
	msg := &pb.GridpoolOrderFilter{}
	for _, s := range f.OrderStates {
		msg.States = append(msg.States, OrderStateToProto(s))
	}
	if f.Side != nil {
		side := MarketSideToProto(*f.Side)
		msg.Side = &side
	}
	if f.DeliveryPeriod != nil {
		msg.DeliveryPeriod = f.DeliveryPeriod.ToProto()
	}
	if f.DeliveryArea != nil {
		msg.DeliveryArea = f.DeliveryArea.ToProto()
	}
	if f.Tag != nil {
		tag := *f.Tag
		msg.Tag = &tag
	}
	return msg
}

// GridpoolOrderFilterFromProto convierte un mensaje wire al filtro de
// dominio.
func GridpoolOrderFilterFromProto(msg *pb.GridpoolOrderFilter) (GridpoolOrderFilter, error) {
	if msg == nil {
		return GridpoolOrderFilter{}, nil
	}

	var filter GridpoolOrderFilter
	for _, s := range msg.States {
		filter.OrderStates = append(filter.OrderStates, OrderStateFromProto(s))
	}
	if msg.Side != nil {
		side := MarketSideFromProto(*msg.Side)
		filter.Side = &side
	}
	if msg.DeliveryPeriod != nil {
		period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
		if err != nil {
			return GridpoolOrderFilter{}, err
		}
		filter.DeliveryPeriod = &period
	}
	if msg.DeliveryArea != nil {
		area := DeliveryAreaFromProto(msg.DeliveryArea)
		filter.DeliveryArea = &area
	}
	if msg.Tag != nil {
		tag := *msg.Tag
		filter.Tag = &tag
	}
	return filter, nil
}

// GridpoolTradeFilter restringe listados y streams de trades propios.
type GridpoolTradeFilter struct {
	TradeStates    []TradeState
	TradeIDs       []uint64
	Side           *MarketSide
	DeliveryPeriod *DeliveryPeriod
	DeliveryArea   *DeliveryArea
}

// ToProto convierte el filtro a su mensaje wire.
func (f GridpoolTradeFilter) ToProto() *pb.GridpoolTradeFilter {
	msg := &pb.GridpoolTradeFilter{}
	for _, s := range f.TradeStates {
		msg.States = append(msg.States, TradeStateToProto(s))
	}
	if len(f.TradeIDs) > 0 {
		msg.TradeIDs = append(msg.TradeIDs, f.TradeIDs...)
	}
	if f.Side != nil {
		side := MarketSideToProto(*f.Side)
		msg.Side = &side
	}
	if f.DeliveryPeriod != nil {
		msg.DeliveryPeriod = f.DeliveryPeriod.ToProto()
	}
	if f.DeliveryArea != nil {
		msg.DeliveryArea = f.DeliveryArea.ToProto()
	}
	return msg
}

// GridpoolTradeFilterFromProto convierte un mensaje wire al filtro de
// dominio.
func GridpoolTradeFilterFromProto(msg *pb.GridpoolTradeFilter) (GridpoolTradeFilter, error) {
	if msg == nil {
		return GridpoolTradeFilter{}, nil
	}

	var filter GridpoolTradeFilter
	for _, s := range msg.States {
		filter.TradeStates = append(filter.TradeStates, TradeStateFromProto(s))
	}
	if len(msg.TradeIDs) > 0 {
		filter.TradeIDs = append(filter.TradeIDs, msg.TradeIDs...)
	}
	if msg.Side != nil {
		side := MarketSideFromProto(*msg.Side)
		filter.Side = &side
	}
	if msg.DeliveryPeriod != nil {
		period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
		if err != nil {
			return GridpoolTradeFilter{}, err
		}
		filter.DeliveryPeriod = &period
	}
	if msg.DeliveryArea != nil {
		area := DeliveryAreaFromProto(msg.DeliveryArea)
		filter.DeliveryArea = &area
	}
	return filter, nil
}

// PublicTradeFilter restringe listados y streams del mercado completo. Las
// áreas de compra y venta se filtran por separado.
type PublicTradeFilter struct {
	States           []TradeState
	BuyDeliveryArea  *DeliveryArea
	SellDeliveryArea *DeliveryArea
	DeliveryPeriod   *DeliveryPeriod
}

// ToProto convierte el filtro a su mensaje wire.
func (f PublicTradeFilter) ToProto() *pb.PublicTradeFilter {
	msg := &pb.PublicTradeFilter{}
	for _, s := range f.States {
		msg.States = append(msg.States, TradeStateToProto(s))
	}
	if f.BuyDeliveryArea != nil {
		msg.BuyDeliveryArea = f.BuyDeliveryArea.ToProto()
	}
	if f.SellDeliveryArea != nil {
		msg.SellDeliveryArea = f.SellDeliveryArea.ToProto()
	}
	if f.DeliveryPeriod != nil {
		msg.DeliveryPeriod = f.DeliveryPeriod.ToProto()
	}
	return msg
}

// PublicTradeFilterFromProto convierte un mensaje wire al filtro de
// dominio.
func PublicTradeFilterFromProto(msg *pb.PublicTradeFilter) (PublicTradeFilter, error) {
	if msg == nil {
		return PublicTradeFilter{}, nil
	}

	var filter PublicTradeFilter
	for _, s := range msg.States {
		filter.States = append(filter.States, TradeStateFromProto(s))
	}
	if msg.BuyDeliveryArea != nil {
		area := DeliveryAreaFromProto(msg.BuyDeliveryArea)
		filter.BuyDeliveryArea = &area
	}
	if msg.SellDeliveryArea != nil {
		area := DeliveryAreaFromProto(msg.SellDeliveryArea)
		filter.SellDeliveryArea = &area
	}
	if msg.DeliveryPeriod != nil {
		period, err := DeliveryPeriodFromProto(msg.DeliveryPeriod)
		if err != nil {
			return PublicTradeFilter{}, err
		}
		filter.DeliveryPeriod = &period
	}
	return filter, nil
}
