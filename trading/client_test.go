package trading

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xKoRx/gridmarket/domain"
	"github.com/xKoRx/gridmarket/pb"
)

// fakeConn captura la última invocación y responde con un mensaje
// preparado, pasándolo por el mismo códec que usa el cliente real.
type fakeConn struct {
	t *testing.T

	method   string
	request  interface{}
	opts     []grpc.CallOption
	response interface{}
	err      error

	stream    *fakeStream
	streamErr error
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error {
	f.method = method
	f.request = args
	f.opts = opts
	if f.err != nil {
		return f.err
	}
	data, err := pb.Codec{}.Marshal(f.response)
	require.NoError(f.t, err)
	return pb.Codec{}.Unmarshal(data, reply)
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	f.method = method
	f.opts = opts
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	f.stream.ctx = ctx
	return f.stream, nil
}

// fakeStream entrega eventos preserializados y termina en io.EOF, igual
// que un stream real cerrado de forma ordenada por el servidor.
type fakeStream struct {
	ctx       context.Context
	sent      []interface{}
	events    [][]byte
	pos       int
	closeSent bool
}

func (s *fakeStream) Header() (metadata.MD, error) { return nil, nil }
func (s *fakeStream) Trailer() metadata.MD         { return nil }
func (s *fakeStream) Context() context.Context     { return s.ctx }

func (s *fakeStream) CloseSend() error {
	s.closeSent = true
	return nil
}

func (s *fakeStream) SendMsg(m interface{}) error {
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeStream) RecvMsg(m interface{}) error {
	if err := s.ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	if s.pos >= len(s.events) {
		return io.EOF
	}
	data := s.events[s.pos]
	s.pos++
	return pb.Codec{}.Unmarshal(data, m)
}

func marshalEvents(t *testing.T, msgs ...interface{}) [][]byte {
	t.Helper()
	events := make([][]byte, 0, len(msgs))
	for _, msg := range msgs {
		data, err := pb.Codec{}.Marshal(msg)
		require.NoError(t, err)
		events = append(events, data)
	}
	return events
}

func buyLimitOrder(t *testing.T) domain.Order {
	t.Helper()
	area, err := domain.NewDeliveryArea("DE", domain.EnergyMarketCodeTypeEuropeEIC)
	require.NoError(t, err)
	period, err := domain.NewDeliveryPeriod(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 15*time.Minute)
	require.NoError(t, err)

	return domain.Order{
		DeliveryArea:   area,
		DeliveryPeriod: period,
		Type:           domain.OrderTypeLimit,
		Side:           domain.MarketSideBuy,
		Price:          domain.Price{Amount: decimal.RequireFromString("50.00"), Currency: domain.CurrencyEUR},
		Quantity:       domain.Energy{MWh: decimal.RequireFromString("0.1")},
	}
}

func activeOrderDetail(t *testing.T, orderID uint64) *pb.OrderDetail {
	t.Helper()
	detail := domain.OrderDetail{
		OrderID: orderID,
		Order:   buyLimitOrder(t),
		StateDetail: domain.StateDetail{
			State:       domain.OrderStateActive,
			StateReason: domain.StateReasonAdd,
			MarketActor: domain.MarketActorUser,
		},
		OpenQuantity:     domain.Energy{MWh: decimal.RequireFromString("0.1")},
		FilledQuantity:   domain.Energy{MWh: decimal.Zero},
		CreateTime:       time.Date(2023, 1, 1, 0, 0, 1, 0, time.UTC),
		ModificationTime: time.Date(2023, 1, 1, 0, 0, 1, 0, time.UTC),
	}
	return detail.ToProto()
}

func newTestClient(t *testing.T) (*Client, *fakeConn) {
	t.Helper()
	conn := &fakeConn{t: t, stream: &fakeStream{}}
	return NewClient(conn, nil), conn
}

// ============================================================
// Operaciones unarias
// ============================================================

func TestCreateGridpoolOrderSendsExactRequest(t *testing.T) {
	client, conn := newTestClient(t)
	conn.response = &pb.CreateGridpoolOrderResponse{OrderDetail: activeOrderDetail(t, 42)}

	detail, err := client.CreateGridpoolOrder(context.Background(), 123, buyLimitOrder(t))
	require.NoError(t, err)

	assert.Equal(t, pb.MethodCreateGridpoolOrder, conn.method)

	req, ok := conn.request.(*pb.CreateGridpoolOrderRequest)
	require.True(t, ok, "la solicitud debe ser el mensaje wire de create")
	assert.Equal(t, uint64(123), req.GridpoolID)
	require.NotNil(t, req.Order)
	assert.Equal(t, "DE", req.Order.DeliveryArea.Code)
	assert.Equal(t, pb.EnergyMarketCodeTypeEuropeEIC, req.Order.DeliveryArea.CodeType)
	assert.Equal(t, pb.OrderTypeLimit, req.Order.Type)
	assert.Equal(t, pb.MarketSideBuy, req.Order.Side)
	assert.Equal(t, "50", req.Order.Price.Amount.Value, "el precio viaja en forma canónica sin ceros finales")
	assert.Equal(t, pb.CurrencyEUR, req.Order.Price.Currency)
	assert.Equal(t, "0.1", req.Order.Quantity.MWh.Value)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), req.Order.DeliveryPeriod.Start.Seconds)
	assert.Equal(t, pb.DeliveryDuration15Min, req.Order.DeliveryPeriod.Duration)
	assert.Nil(t, req.Order.ExecutionOption)
	assert.Nil(t, req.Order.ValidUntil)
	assert.Nil(t, req.Order.Tag)

	// El códec del paquete se fuerza por llamada, nunca globalmente.
	var codecName string
	for _, opt := range conn.opts {
		if fc, isForce := opt.(grpc.ForceCodecCallOption); isForce {
			codecName = fc.Codec.Name()
		}
	}
	assert.Equal(t, "proto", codecName)

	assert.Equal(t, uint64(42), detail.OrderID)
	assert.Equal(t, domain.OrderStateActive, detail.StateDetail.State)
	assert.True(t, detail.Order.Price.Amount.Equal(decimal.RequireFromString("50")))
}

func TestCreateGridpoolOrderValidatesLocally(t *testing.T) {
	client, conn := newTestClient(t)

	order := buyLimitOrder(t)
	order.Price.Amount = decimal.RequireFromString("50.123")

	_, err := client.CreateGridpoolOrder(context.Background(), 123, order)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Empty(t, conn.method, "una orden inválida no debe tocar la red")
}

func TestCreateGridpoolOrderClassifiesTransportError(t *testing.T) {
	client, conn := newTestClient(t)
	conn.err = status.Error(codes.Unavailable, "market gateway down")

	_, err := client.CreateGridpoolOrder(context.Background(), 123, buyLimitOrder(t))
	require.Error(t, err)

	assert.Equal(t, domain.ErrConnectionLost, domain.CodeOf(err))
	assert.True(t, domain.IsRetryable(domain.CodeOf(err)))

	var tradingErr *domain.TradingError
	require.True(t, errors.As(err, &tradingErr))
	assert.Equal(t, uint64(123), tradingErr.Details["gridpool_id"])
}

func TestCreateGridpoolOrderDecodeFailure(t *testing.T) {
	client, conn := newTestClient(t)

	// Respuesta sin create_time: decodifica el mensaje pero no el dominio.
	broken := activeOrderDetail(t, 42)
	broken.CreateTime = nil
	conn.response = &pb.CreateGridpoolOrderResponse{OrderDetail: broken}

	_, err := client.CreateGridpoolOrder(context.Background(), 123, buyLimitOrder(t))
	require.Error(t, err)
	assert.Equal(t, domain.ErrDecodeFailure, domain.CodeOf(err))
}

func TestUpdateGridpoolOrderBuildsFieldMask(t *testing.T) {
	client, conn := newTestClient(t)
	conn.response = &pb.UpdateGridpoolOrderResponse{OrderDetail: activeOrderDetail(t, 42)}

	newPrice := domain.Price{Amount: decimal.RequireFromString("55.50"), Currency: domain.CurrencyEUR}
	tag := "battery-dispatch"
	update := domain.UpdateOrder{Price: &newPrice, Tag: &tag}

	detail, err := client.UpdateGridpoolOrder(context.Background(), 123, 42, update)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), detail.OrderID)

	assert.Equal(t, pb.MethodUpdateGridpoolOrder, conn.method)

	req, ok := conn.request.(*pb.UpdateGridpoolOrderRequest)
	require.True(t, ok)
	assert.Equal(t, uint64(123), req.GridpoolID)
	assert.Equal(t, uint64(42), req.OrderID)
	require.NotNil(t, req.UpdateMask)
	assert.Equal(t, []string{"price", "tag"}, req.UpdateMask.Paths)
	require.NotNil(t, req.Update)
	assert.Equal(t, "55.5", req.Update.Price.Amount.Value)
	require.NotNil(t, req.Update.Tag)
	assert.Equal(t, "battery-dispatch", *req.Update.Tag)
	assert.Nil(t, req.Update.Quantity, "los campos no establecidos no viajan")
}

func TestUpdateGridpoolOrderRejectsEmptyPatch(t *testing.T) {
	client, conn := newTestClient(t)

	_, err := client.UpdateGridpoolOrder(context.Background(), 123, 42, domain.UpdateOrder{})
	require.Error(t, err)

	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "at least one field")
	assert.Empty(t, conn.method)
}

func TestCancelGridpoolOrderReturnsFinalState(t *testing.T) {
	client, conn := newTestClient(t)

	canceled := activeOrderDetail(t, 42)
	canceled.StateDetail.State = pb.OrderStateCanceled
	conn.response = &pb.CancelGridpoolOrderResponse{OrderDetail: canceled}

	detail, err := client.CancelGridpoolOrder(context.Background(), 123, 42)
	require.NoError(t, err)

	assert.Equal(t, pb.MethodCancelGridpoolOrder, conn.method)
	req, ok := conn.request.(*pb.CancelGridpoolOrderRequest)
	require.True(t, ok)
	assert.Equal(t, uint64(123), req.GridpoolID)
	assert.Equal(t, uint64(42), req.OrderID)

	assert.Equal(t, domain.OrderStateCanceled, detail.StateDetail.State)
	assert.True(t, detail.StateDetail.State.IsTerminal())
}

func TestCancelAllGridpoolOrdersReturnsConfirmedID(t *testing.T) {
	client, conn := newTestClient(t)
	conn.response = &pb.CancelAllGridpoolOrdersResponse{GridpoolID: 123}

	gridpoolID, err := client.CancelAllGridpoolOrders(context.Background(), 123)
	require.NoError(t, err)

	assert.Equal(t, pb.MethodCancelAllGridpoolOrders, conn.method)
	assert.Equal(t, uint64(123), gridpoolID)
}

func TestGetGridpoolOrderNotFound(t *testing.T) {
	client, conn := newTestClient(t)
	conn.err = status.Error(codes.NotFound, "no such order")

	_, err := client.GetGridpoolOrder(context.Background(), 123, 999)
	require.Error(t, err)

	assert.Equal(t, domain.ErrNotFound, domain.CodeOf(err))
	assert.False(t, domain.IsRetryable(domain.CodeOf(err)))

	var tradingErr *domain.TradingError
	require.True(t, errors.As(err, &tradingErr))
	assert.Equal(t, uint64(999), tradingErr.Details["order_id"])
}

func TestListGridpoolOrdersDecodesAll(t *testing.T) {
	client, conn := newTestClient(t)
	conn.response = &pb.ListGridpoolOrdersResponse{
		OrderDetails: []*pb.OrderDetail{activeOrderDetail(t, 1), activeOrderDetail(t, 2)},
	}

	filter := domain.GridpoolOrderFilter{OrderStates: []domain.OrderState{domain.OrderStateActive}}
	details, err := client.ListGridpoolOrders(context.Background(), 123, filter)
	require.NoError(t, err)

	assert.Equal(t, pb.MethodListGridpoolOrders, conn.method)
	req, ok := conn.request.(*pb.ListGridpoolOrdersRequest)
	require.True(t, ok)
	require.NotNil(t, req.Filter)
	assert.Equal(t, []pb.OrderState{pb.OrderStateActive}, req.Filter.States)

	require.Len(t, details, 2)
	assert.Equal(t, uint64(1), details[0].OrderID)
	assert.Equal(t, uint64(2), details[1].OrderID)
}

func TestListPublicTradesOmitsGridpool(t *testing.T) {
	client, conn := newTestClient(t)

	trade := domain.PublicTrade{
		ID:             7,
		DeliveryPeriod: mustPeriod(t, time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), 15*time.Minute),
		ExecutionTime:  time.Date(2023, 1, 1, 11, 59, 0, 0, time.UTC),
		Price:          domain.Price{Amount: decimal.RequireFromString("48.25"), Currency: domain.CurrencyEUR},
		Quantity:       domain.Energy{MWh: decimal.RequireFromString("1.25")},
		State:          domain.TradeStateActive,
	}
	conn.response = &pb.ListPublicTradesResponse{PublicTrades: []*pb.PublicTrade{trade.ToProto()}}

	trades, err := client.ListPublicTrades(context.Background(), domain.PublicTradeFilter{})
	require.NoError(t, err)

	assert.Equal(t, pb.MethodListPublicTrades, conn.method)
	require.Len(t, trades, 1)
	assert.Equal(t, uint64(7), trades[0].ID)
	assert.True(t, trades[0].Price.Amount.Equal(decimal.RequireFromString("48.25")))
}

func mustPeriod(t *testing.T, start time.Time, duration time.Duration) domain.DeliveryPeriod {
	t.Helper()
	period, err := domain.NewDeliveryPeriod(start, duration)
	require.NoError(t, err)
	return period
}

// ============================================================
// Streams
// ============================================================

func TestStreamPublicTradesDeliversEventsInOrder(t *testing.T) {
	client, conn := newTestClient(t)

	base := domain.PublicTrade{
		DeliveryPeriod: mustPeriod(t, time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), 15*time.Minute),
		ExecutionTime:  time.Date(2023, 1, 1, 11, 59, 0, 0, time.UTC),
		Price:          domain.Price{Amount: decimal.RequireFromString("48.25"), Currency: domain.CurrencyEUR},
		Quantity:       domain.Energy{MWh: decimal.RequireFromString("1.25")},
		State:          domain.TradeStateActive,
	}
	first, second, third := base, base, base
	first.ID, second.ID, third.ID = 1, 2, 3

	conn.stream.events = marshalEvents(t,
		&pb.ReceivePublicTradesStreamResponse{PublicTrade: first.ToProto()},
		&pb.ReceivePublicTradesStreamResponse{PublicTrade: second.ToProto()},
		&pb.ReceivePublicTradesStreamResponse{PublicTrade: third.ToProto()},
	)

	stream, err := client.StreamPublicTrades(context.Background(), domain.PublicTradeFilter{})
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, pb.MethodReceivePublicTradesStream, conn.method)
	require.Len(t, conn.stream.sent, 1, "la suscripción envía exactamente una solicitud")
	assert.True(t, conn.stream.closeSent, "el lado de envío se cierra tras la suscripción")

	for i, want := range []uint64{1, 2, 3} {
		trade, err := stream.Recv()
		require.NoError(t, err, "evento %d", i)
		assert.Equal(t, want, trade.ID)
	}

	_, err = stream.Recv()
	assert.Equal(t, io.EOF, err, "el fin ordenado del stream es io.EOF sin envolver")
}

func TestStreamGridpoolOrdersSendsSubscription(t *testing.T) {
	client, conn := newTestClient(t)
	conn.stream.events = marshalEvents(t,
		&pb.ReceiveGridpoolOrdersStreamResponse{Order: activeOrderDetail(t, 42)},
	)

	filter := domain.GridpoolOrderFilter{Side: sidePtr(domain.MarketSideBuy)}
	stream, err := client.StreamGridpoolOrders(context.Background(), 123, filter)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, pb.MethodReceiveGridpoolOrdersStream, conn.method)
	require.NotEmpty(t, conn.stream.sent)
	req, ok := conn.stream.sent[0].(*pb.ReceiveGridpoolOrdersStreamRequest)
	require.True(t, ok)
	assert.Equal(t, uint64(123), req.GridpoolID)
	require.NotNil(t, req.Filter)

	detail, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), detail.OrderID)
}

func sidePtr(side domain.MarketSide) *domain.MarketSide {
	return &side
}

func TestStreamGridpoolTradesOpenError(t *testing.T) {
	client, conn := newTestClient(t)
	conn.streamErr = status.Error(codes.PermissionDenied, "gridpool not granted")

	_, err := client.StreamGridpoolTrades(context.Background(), 123, domain.GridpoolTradeFilter{})
	require.Error(t, err)
	assert.Equal(t, domain.ErrPermissionDenied, domain.CodeOf(err))
}

func TestStreamCloseEndsSubscription(t *testing.T) {
	client, conn := newTestClient(t)
	conn.stream.events = marshalEvents(t,
		&pb.ReceiveGridpoolOrdersStreamResponse{Order: activeOrderDetail(t, 42)},
	)

	stream, err := client.StreamGridpoolOrders(context.Background(), 123, domain.GridpoolOrderFilter{})
	require.NoError(t, err)

	stream.Close()

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, domain.ErrStreamClosed, domain.CodeOf(err))
}
