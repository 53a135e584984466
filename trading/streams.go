package trading

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"

	"github.com/xKoRx/gridmarket/domain"
	grpcSDK "github.com/xKoRx/gridmarket/grpc"
	"github.com/xKoRx/gridmarket/pb"
)

// Stream entrega eventos tipados de una suscripción server-streaming.
//
// El consumo es pull: cada Recv bloquea hasta el siguiente evento, el
// fin del stream (io.EOF) o un error de transporte. El contexto pasado
// al abrir el stream gobierna su vida completa; Close cancela ese
// contexto y termina la suscripción del lado del cliente.
type Stream[T any] struct {
	cancel context.CancelFunc
	kind   string
	recv   func() (T, error)
}

// Recv retorna el siguiente evento del stream. Cuando el servidor cierra
// el stream de forma ordenada retorna io.EOF; cualquier otro corte se
// clasifica con el código de dominio correspondiente.
func (s *Stream[T]) Recv() (T, error) {
	event, err := s.recv()
	if err == nil {
		return event, nil
	}

	var zero T
	if errors.Is(err, io.EOF) {
		return zero, io.EOF
	}
	var tradingErr *domain.TradingError
	if errors.As(err, &tradingErr) {
		return zero, err
	}
	return zero, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to receive "+s.kind+" event", err)
}

// Close termina la suscripción. Un Recv en curso retorna con error de
// cancelación; llamadas posteriores también. Es idempotente.
func (s *Stream[T]) Close() {
	s.cancel()
}

// openStream abre el stream, envía la única solicitud y cierra el lado
// de envío. El servicio no acepta más mensajes del cliente después de
// la suscripción inicial.
func (c *Client) openStream(ctx context.Context, desc *grpc.StreamDesc, method string, req interface{}) (grpc.ClientStream, context.CancelFunc, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	stream, err := c.conn.NewStream(streamCtx, desc, method, c.callOptions...)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if err := stream.SendMsg(req); err != nil {
		cancel()
		return nil, nil, err
	}
	if err := stream.CloseSend(); err != nil {
		cancel()
		return nil, nil, err
	}
	return stream, cancel, nil
}

// StreamGridpoolOrders abre una suscripción a los cambios de estado de
// las órdenes del gridpool. Cada evento es el detalle completo de la
// orden después del cambio; el filtro restringe qué órdenes se observan.
func (c *Client) StreamGridpoolOrders(ctx context.Context, gridpoolID uint64, filter domain.GridpoolOrderFilter) (*Stream[domain.OrderDetail], error) {
	req := &pb.ReceiveGridpoolOrdersStreamRequest{
		GridpoolID: gridpoolID,
		Filter:     filter.ToProto(),
	}

	stream, cancel, err := c.openStream(ctx, pb.StreamDescReceiveGridpoolOrders, pb.MethodReceiveGridpoolOrdersStream, req)
	if err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to open gridpool orders stream", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	return &Stream[domain.OrderDetail]{
		cancel: cancel,
		kind:   "order",
		recv: func() (domain.OrderDetail, error) {
			resp := &pb.ReceiveGridpoolOrdersStreamResponse{}
			if err := stream.RecvMsg(resp); err != nil {
				return domain.OrderDetail{}, err
			}
			detail, err := domain.OrderDetailFromProto(resp.Order)
			if err != nil {
				return domain.OrderDetail{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode order event", err)
			}
			return detail, nil
		},
	}, nil
}

// StreamGridpoolTrades abre una suscripción a los trades propios del
// gridpool a medida que ejecutan.
func (c *Client) StreamGridpoolTrades(ctx context.Context, gridpoolID uint64, filter domain.GridpoolTradeFilter) (*Stream[domain.Trade], error) {
	req := &pb.ReceiveGridpoolTradesStreamRequest{
		GridpoolID: gridpoolID,
		Filter:     filter.ToProto(),
	}

	stream, cancel, err := c.openStream(ctx, pb.StreamDescReceiveGridpoolTrades, pb.MethodReceiveGridpoolTradesStream, req)
	if err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to open gridpool trades stream", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	return &Stream[domain.Trade]{
		cancel: cancel,
		kind:   "trade",
		recv: func() (domain.Trade, error) {
			resp := &pb.ReceiveGridpoolTradesStreamResponse{}
			if err := stream.RecvMsg(resp); err != nil {
				return domain.Trade{}, err
			}
			trade, err := domain.TradeFromProto(resp.Trade)
			if err != nil {
				return domain.Trade{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode trade event", err)
			}
			return trade, nil
		},
	}, nil
}

// StreamPublicTrades abre una suscripción al feed público anónimo del
// mercado completo. No requiere gridpool.
func (c *Client) StreamPublicTrades(ctx context.Context, filter domain.PublicTradeFilter) (*Stream[domain.PublicTrade], error) {
	req := &pb.ReceivePublicTradesStreamRequest{Filter: filter.ToProto()}

	stream, cancel, err := c.openStream(ctx, pb.StreamDescReceivePublicTrades, pb.MethodReceivePublicTradesStream, req)
	if err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to open public trades stream", err)
	}

	return &Stream[domain.PublicTrade]{
		cancel: cancel,
		kind:   "public trade",
		recv: func() (domain.PublicTrade, error) {
			resp := &pb.ReceivePublicTradesStreamResponse{}
			if err := stream.RecvMsg(resp); err != nil {
				return domain.PublicTrade{}, err
			}
			trade, err := domain.PublicTradeFromProto(resp.PublicTrade)
			if err != nil {
				return domain.PublicTrade{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode public trade event", err)
			}
			return trade, nil
		},
	}, nil
}
