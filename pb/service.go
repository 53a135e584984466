package pb

import (
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// ServiceName es el nombre completo del servicio remoto.
const ServiceName = "gridmarket.v1.ElectricityTradingService"

// Métodos del servicio, en el formato que espera grpc.ClientConn.Invoke.
const (
	MethodCreateGridpoolOrder         = "/" + ServiceName + "/CreateGridpoolOrder"
	MethodUpdateGridpoolOrder         = "/" + ServiceName + "/UpdateGridpoolOrder"
	MethodCancelGridpoolOrder         = "/" + ServiceName + "/CancelGridpoolOrder"
	MethodCancelAllGridpoolOrders     = "/" + ServiceName + "/CancelAllGridpoolOrders"
	MethodGetGridpoolOrder            = "/" + ServiceName + "/GetGridpoolOrder"
	MethodListGridpoolOrders          = "/" + ServiceName + "/ListGridpoolOrders"
	MethodListGridpoolTrades          = "/" + ServiceName + "/ListGridpoolTrades"
	MethodListPublicTrades            = "/" + ServiceName + "/ListPublicTrades"
	MethodReceiveGridpoolOrdersStream = "/" + ServiceName + "/ReceiveGridpoolOrdersStream"
	MethodReceiveGridpoolTradesStream = "/" + ServiceName + "/ReceiveGridpoolTradesStream"
	MethodReceivePublicTradesStream   = "/" + ServiceName + "/ReceivePublicTradesStream"
)

// Descriptores de los streams server-side del servicio.
var (
	StreamDescReceiveGridpoolOrders = &grpc.StreamDesc{
		StreamName:    "ReceiveGridpoolOrdersStream",
		ServerStreams: true,
	}
	StreamDescReceiveGridpoolTrades = &grpc.StreamDesc{
		StreamName:    "ReceiveGridpoolTradesStream",
		ServerStreams: true,
	}
	StreamDescReceivePublicTrades = &grpc.StreamDesc{
		StreamName:    "ReceivePublicTradesStream",
		ServerStreams: true,
	}
)

// ============================================================
// CreateGridpoolOrder
// ============================================================

type CreateGridpoolOrderRequest struct {
	GridpoolID uint64 // campo 1
	Order      *Order // campo 2
}

func (m *CreateGridpoolOrderRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.Order != nil {
		if b, err = appendMessage(b, 2, m.Order); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *CreateGridpoolOrderRequest) UnmarshalBinary(data []byte) error {
	*m = CreateGridpoolOrderRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Order = new(Order)
			n, err := consumeMessage(data, m.Order)
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

type CreateGridpoolOrderResponse struct {
	OrderDetail *OrderDetail // campo 1
}

func (m *CreateGridpoolOrderResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.OrderDetail != nil {
		if b, err = appendMessage(b, 1, m.OrderDetail); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *CreateGridpoolOrderResponse) UnmarshalBinary(data []byte) error {
	*m = CreateGridpoolOrderResponse{}
	return consumeOrderDetailField(data, &m.OrderDetail)
}

// ============================================================
// UpdateGridpoolOrder
// ============================================================

type UpdateGridpoolOrderRequest struct {
	GridpoolID uint64                 // campo 1
	OrderID    uint64                 // campo 2
	UpdateMask *fieldmaskpb.FieldMask // campo 3
	Update     *UpdateOrder           // campo 4
}

func (m *UpdateGridpoolOrderRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.OrderID != 0 {
		b = appendVarintField(b, 2, m.OrderID)
	}
	if m.UpdateMask != nil {
		if b, err = appendProto(b, 3, m.UpdateMask); err != nil {
			return nil, err
		}
	}
	if m.Update != nil {
		if b, err = appendMessage(b, 4, m.Update); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *UpdateGridpoolOrderRequest) UnmarshalBinary(data []byte) error {
	*m = UpdateGridpoolOrderRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			m.OrderID = v
			data = data[n:]
		case num == 3 && typ == protowire.BytesType:
			m.UpdateMask = new(fieldmaskpb.FieldMask)
			n, err := consumeProto(data, m.UpdateMask)
			if err != nil {
				return err
			}
			data = data[n:]
		case num == 4 && typ == protowire.BytesType:
			m.Update = new(UpdateOrder)
			n, err := consumeMessage(data, m.Update)
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

type UpdateGridpoolOrderResponse struct {
	OrderDetail *OrderDetail // campo 1
}

func (m *UpdateGridpoolOrderResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.OrderDetail != nil {
		if b, err = appendMessage(b, 1, m.OrderDetail); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *UpdateGridpoolOrderResponse) UnmarshalBinary(data []byte) error {
	*m = UpdateGridpoolOrderResponse{}
	return consumeOrderDetailField(data, &m.OrderDetail)
}

// ============================================================
// CancelGridpoolOrder
// ============================================================

type CancelGridpoolOrderRequest struct {
	GridpoolID uint64 // campo 1
	OrderID    uint64 // campo 2
}

func (m *CancelGridpoolOrderRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.OrderID != 0 {
		b = appendVarintField(b, 2, m.OrderID)
	}
	return b, nil
}

func (m *CancelGridpoolOrderRequest) UnmarshalBinary(data []byte) error {
	*m = CancelGridpoolOrderRequest{}
	return consumeIDPair(data, &m.GridpoolID, &m.OrderID)
}

type CancelGridpoolOrderResponse struct {
	OrderDetail *OrderDetail // campo 1
}

func (m *CancelGridpoolOrderResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.OrderDetail != nil {
		if b, err = appendMessage(b, 1, m.OrderDetail); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *CancelGridpoolOrderResponse) UnmarshalBinary(data []byte) error {
	*m = CancelGridpoolOrderResponse{}
	return consumeOrderDetailField(data, &m.OrderDetail)
}

// ============================================================
// CancelAllGridpoolOrders
// ============================================================

type CancelAllGridpoolOrdersRequest struct {
	GridpoolID uint64 // campo 1
}

func (m *CancelAllGridpoolOrdersRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	return b, nil
}

func (m *CancelAllGridpoolOrdersRequest) UnmarshalBinary(data []byte) error {
	*m = CancelAllGridpoolOrdersRequest{}
	var unused uint64
	return consumeIDPair(data, &m.GridpoolID, &unused)
}

type CancelAllGridpoolOrdersResponse struct {
	GridpoolID uint64 // campo 1
}

func (m *CancelAllGridpoolOrdersResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	return b, nil
}

func (m *CancelAllGridpoolOrdersResponse) UnmarshalBinary(data []byte) error {
	*m = CancelAllGridpoolOrdersResponse{}
	var unused uint64
	return consumeIDPair(data, &m.GridpoolID, &unused)
}

// ============================================================
// GetGridpoolOrder
// ============================================================

type GetGridpoolOrderRequest struct {
	GridpoolID uint64 // campo 1
	OrderID    uint64 // campo 2
}

func (m *GetGridpoolOrderRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.OrderID != 0 {
		b = appendVarintField(b, 2, m.OrderID)
	}
	return b, nil
}

func (m *GetGridpoolOrderRequest) UnmarshalBinary(data []byte) error {
	*m = GetGridpoolOrderRequest{}
	return consumeIDPair(data, &m.GridpoolID, &m.OrderID)
}

type GetGridpoolOrderResponse struct {
	OrderDetail *OrderDetail // campo 1
}

func (m *GetGridpoolOrderResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.OrderDetail != nil {
		if b, err = appendMessage(b, 1, m.OrderDetail); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetGridpoolOrderResponse) UnmarshalBinary(data []byte) error {
	*m = GetGridpoolOrderResponse{}
	return consumeOrderDetailField(data, &m.OrderDetail)
}

// ============================================================
// ListGridpoolOrders
// ============================================================

type ListGridpoolOrdersRequest struct {
	GridpoolID uint64               // campo 1
	Filter     *GridpoolOrderFilter // campo 2
}

func (m *ListGridpoolOrdersRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.Filter != nil {
		if b, err = appendMessage(b, 2, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListGridpoolOrdersRequest) UnmarshalBinary(data []byte) error {
	*m = ListGridpoolOrdersRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Filter = new(GridpoolOrderFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ListGridpoolOrdersResponse struct {
	OrderDetails []*OrderDetail // campo 1, repeated
}

func (m *ListGridpoolOrdersResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	for _, od := range m.OrderDetails {
		if b, err = appendMessage(b, 1, od); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListGridpoolOrdersResponse) UnmarshalBinary(data []byte) error {
	*m = ListGridpoolOrdersResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			od := new(OrderDetail)
			n, err := consumeMessage(data, od)
			if err != nil {
				return err
			}
			m.OrderDetails = append(m.OrderDetails, od)
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

// ============================================================
// ListGridpoolTrades
// ============================================================

type ListGridpoolTradesRequest struct {
	GridpoolID uint64               // campo 1
	Filter     *GridpoolTradeFilter // campo 2
}

func (m *ListGridpoolTradesRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.Filter != nil {
		if b, err = appendMessage(b, 2, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListGridpoolTradesRequest) UnmarshalBinary(data []byte) error {
	*m = ListGridpoolTradesRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Filter = new(GridpoolTradeFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ListGridpoolTradesResponse struct {
	Trades []*Trade // campo 1, repeated
}

func (m *ListGridpoolTradesResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	for _, t := range m.Trades {
		if b, err = appendMessage(b, 1, t); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListGridpoolTradesResponse) UnmarshalBinary(data []byte) error {
	*m = ListGridpoolTradesResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			t := new(Trade)
			n, err := consumeMessage(data, t)
			if err != nil {
				return err
			}
			m.Trades = append(m.Trades, t)
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

// ============================================================
// ListPublicTrades
// ============================================================

type ListPublicTradesRequest struct {
	Filter *PublicTradeFilter // campo 1
}

func (m *ListPublicTradesRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Filter != nil {
		if b, err = appendMessage(b, 1, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListPublicTradesRequest) UnmarshalBinary(data []byte) error {
	*m = ListPublicTradesRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Filter = new(PublicTradeFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ListPublicTradesResponse struct {
	PublicTrades []*PublicTrade // campo 1, repeated
}

func (m *ListPublicTradesResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	for _, t := range m.PublicTrades {
		if b, err = appendMessage(b, 1, t); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListPublicTradesResponse) UnmarshalBinary(data []byte) error {
	*m = ListPublicTradesResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			t := new(PublicTrade)
			n, err := consumeMessage(data, t)
			if err != nil {
				return err
			}
			m.PublicTrades = append(m.PublicTrades, t)
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

// ============================================================
// Streams
// ============================================================

type ReceiveGridpoolOrdersStreamRequest struct {
	GridpoolID uint64               // campo 1
	Filter     *GridpoolOrderFilter // campo 2
}

func (m *ReceiveGridpoolOrdersStreamRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.Filter != nil {
		if b, err = appendMessage(b, 2, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceiveGridpoolOrdersStreamRequest) UnmarshalBinary(data []byte) error {
	*m = ReceiveGridpoolOrdersStreamRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Filter = new(GridpoolOrderFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ReceiveGridpoolOrdersStreamResponse struct {
	Order *OrderDetail // campo 1
}

func (m *ReceiveGridpoolOrdersStreamResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Order != nil {
		if b, err = appendMessage(b, 1, m.Order); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceiveGridpoolOrdersStreamResponse) UnmarshalBinary(data []byte) error {
	*m = ReceiveGridpoolOrdersStreamResponse{}
	return consumeOrderDetailField(data, &m.Order)
}

type ReceiveGridpoolTradesStreamRequest struct {
	GridpoolID uint64               // campo 1
	Filter     *GridpoolTradeFilter // campo 2
}

func (m *ReceiveGridpoolTradesStreamRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.GridpoolID != 0 {
		b = appendVarintField(b, 1, m.GridpoolID)
	}
	if m.Filter != nil {
		if b, err = appendMessage(b, 2, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceiveGridpoolTradesStreamRequest) UnmarshalBinary(data []byte) error {
	*m = ReceiveGridpoolTradesStreamRequest{}
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
			m.GridpoolID = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			m.Filter = new(GridpoolTradeFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ReceiveGridpoolTradesStreamResponse struct {
	Trade *Trade // campo 1
}

func (m *ReceiveGridpoolTradesStreamResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Trade != nil {
		if b, err = appendMessage(b, 1, m.Trade); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceiveGridpoolTradesStreamResponse) UnmarshalBinary(data []byte) error {
	*m = ReceiveGridpoolTradesStreamResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Trade = new(Trade)
			n, err := consumeMessage(data, m.Trade)
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

type ReceivePublicTradesStreamRequest struct {
	Filter *PublicTradeFilter // campo 1
}

func (m *ReceivePublicTradesStreamRequest) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.Filter != nil {
		if b, err = appendMessage(b, 1, m.Filter); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceivePublicTradesStreamRequest) UnmarshalBinary(data []byte) error {
	*m = ReceivePublicTradesStreamRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Filter = new(PublicTradeFilter)
			n, err := consumeMessage(data, m.Filter)
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

type ReceivePublicTradesStreamResponse struct {
	PublicTrade *PublicTrade // campo 1
}

func (m *ReceivePublicTradesStreamResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	var err error
	if m.PublicTrade != nil {
		if b, err = appendMessage(b, 1, m.PublicTrade); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReceivePublicTradesStreamResponse) UnmarshalBinary(data []byte) error {
	*m = ReceivePublicTradesStreamResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.PublicTrade = new(PublicTrade)
			n, err := consumeMessage(data, m.PublicTrade)
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

// ============================================================
// Helpers compartidos
// ============================================================

// consumeOrderDetailField decodifica el patrón común de respuesta con un
// único OrderDetail en el campo 1.
func consumeOrderDetailField(data []byte, dst **OrderDetail) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			*dst = new(OrderDetail)
			n, err := consumeMessage(data, *dst)
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

// consumeIDPair decodifica el patrón común de mensaje con dos varints en los
// campos 1 y 2.
func consumeIDPair(data []byte, first, second *uint64) error {
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
			*first = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n, err := consumeVarint(data)
			if err != nil {
				return err
			}
			*second = v
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
