package trading

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/xKoRx/gridmarket/domain"
	grpcSDK "github.com/xKoRx/gridmarket/grpc"
	"github.com/xKoRx/gridmarket/pb"
)

// Client es el cliente tipado de la API de trading de electricidad.
//
// Expone una operación por capacidad remota del servicio. Los argumentos
// y resultados son tipos del dominio; la conversión a wire y la
// decodificación de respuestas ocurren adentro. Es seguro para uso
// concurrente: no guarda estado mutable entre llamadas.
type Client struct {
	conn        grpc.ClientConnInterface
	channel     *grpcSDK.Client
	callOptions []grpc.CallOption
}

// NewClient crea un cliente sobre una conexión gRPC existente.
//
// Example:
//
//	client := trading.NewClient(channel.Conn(), nil)
func NewClient(conn grpc.ClientConnInterface, config *Config) *Client {
	// El codec se fuerza por llamada; registrarlo globalmente alteraría
	// la serialización de otros clientes sobre el mismo proceso.
	opts := []grpc.CallOption{grpc.ForceCodec(pb.Codec{})}
	if config != nil {
		opts = append(opts, config.CallOptions...)
	}
	return &Client{
		conn:        conn,
		callOptions: opts,
	}
}

// Connect marca el canal y construye el cliente en un solo paso. El
// Close del cliente cierra también el canal.
//
// Example:
//
//	config := trading.DefaultConfig("grid.example.com:443")
//	config.APIKey = os.Getenv("GRIDMARKET_API_KEY")
//	client, err := trading.Connect(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func Connect(ctx context.Context, config *Config) (*Client, error) {
	channel, err := grpcSDK.NewClient(ctx, config.channelConfig())
	if err != nil {
		return nil, domain.WrapError(domain.ErrConnectionLost, "failed to connect to trading API", err).
			WithDetail("target", config.Target)
	}

	client := NewClient(channel.Conn(), config)
	client.channel = channel
	return client, nil
}

// Close cierra el canal subyacente si el cliente lo creó (vía Connect).
// Para clientes construidos con NewClient es un no-op; el dueño de la
// conexión la cierra.
func (c *Client) Close() error {
	if c.channel == nil {
		return nil
	}
	return c.channel.Close()
}

// ============================================================
// Mutación de órdenes
// ============================================================

// CreateGridpoolOrder crea una orden en el mercado a nombre del gridpool.
//
// La orden se valida localmente (precisión de precio y cantidad, área,
// período, lado) antes de enviar un solo byte.
func (c *Client) CreateGridpoolOrder(ctx context.Context, gridpoolID uint64, order domain.Order) (domain.OrderDetail, error) {
	if err := domain.ValidateOrder(order); err != nil {
		return domain.OrderDetail{}, err
	}

	req := &pb.CreateGridpoolOrderRequest{
		GridpoolID: gridpoolID,
		Order:      order.ToProto(),
	}
	resp := &pb.CreateGridpoolOrderResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodCreateGridpoolOrder, req, resp, c.callOptions...); err != nil {
		return domain.OrderDetail{}, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to create gridpool order", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	detail, err := domain.OrderDetailFromProto(resp.OrderDetail)
	if err != nil {
		return domain.OrderDetail{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode create order response", err).
			WithDetail("gridpool_id", gridpoolID)
	}
	return detail, nil
}

// UpdateGridpoolOrder aplica un parche sobre una orden existente.
//
// Solo los campos establecidos del parche viajan; un FieldMask con
// exactamente esos paths acompaña la solicitud para que el servidor no
// toque el resto. Un parche vacío es entrada inválida.
func (c *Client) UpdateGridpoolOrder(ctx context.Context, gridpoolID, orderID uint64, update domain.UpdateOrder) (domain.OrderDetail, error) {
	if err := domain.ValidateUpdateOrder(update); err != nil {
		return domain.OrderDetail{}, err
	}

	req := &pb.UpdateGridpoolOrderRequest{
		GridpoolID: gridpoolID,
		OrderID:    orderID,
		UpdateMask: &fieldmaskpb.FieldMask{Paths: update.FieldMaskPaths()},
		Update:     update.ToProto(),
	}
	resp := &pb.UpdateGridpoolOrderResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodUpdateGridpoolOrder, req, resp, c.callOptions...); err != nil {
		return domain.OrderDetail{}, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to update gridpool order", err).
			WithDetail("gridpool_id", gridpoolID).
			WithDetail("order_id", orderID)
	}

	detail, err := domain.OrderDetailFromProto(resp.OrderDetail)
	if err != nil {
		return domain.OrderDetail{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode update order response", err).
			WithDetail("order_id", orderID)
	}
	return detail, nil
}

// CancelGridpoolOrder solicita la cancelación de una orden y retorna su
// estado resultante.
func (c *Client) CancelGridpoolOrder(ctx context.Context, gridpoolID, orderID uint64) (domain.OrderDetail, error) {
	req := &pb.CancelGridpoolOrderRequest{
		GridpoolID: gridpoolID,
		OrderID:    orderID,
	}
	resp := &pb.CancelGridpoolOrderResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodCancelGridpoolOrder, req, resp, c.callOptions...); err != nil {
		return domain.OrderDetail{}, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to cancel gridpool order", err).
			WithDetail("gridpool_id", gridpoolID).
			WithDetail("order_id", orderID)
	}

	detail, err := domain.OrderDetailFromProto(resp.OrderDetail)
	if err != nil {
		return domain.OrderDetail{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode cancel order response", err).
			WithDetail("order_id", orderID)
	}
	return detail, nil
}

// CancelAllGridpoolOrders cancela todas las órdenes abiertas del gridpool
// y retorna el id del gridpool confirmado por el servidor.
func (c *Client) CancelAllGridpoolOrders(ctx context.Context, gridpoolID uint64) (uint64, error) {
	req := &pb.CancelAllGridpoolOrdersRequest{GridpoolID: gridpoolID}
	resp := &pb.CancelAllGridpoolOrdersResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodCancelAllGridpoolOrders, req, resp, c.callOptions...); err != nil {
		return 0, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to cancel all gridpool orders", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	return resp.GridpoolID, nil
}

// ============================================================
// Consulta
// ============================================================

// GetGridpoolOrder obtiene el detalle actual de una orden.
func (c *Client) GetGridpoolOrder(ctx context.Context, gridpoolID, orderID uint64) (domain.OrderDetail, error) {
	req := &pb.GetGridpoolOrderRequest{
		GridpoolID: gridpoolID,
		OrderID:    orderID,
	}
	resp := &pb.GetGridpoolOrderResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodGetGridpoolOrder, req, resp, c.callOptions...); err != nil {
		return domain.OrderDetail{}, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to get gridpool order", err).
			WithDetail("gridpool_id", gridpoolID).
			WithDetail("order_id", orderID)
	}

	detail, err := domain.OrderDetailFromProto(resp.OrderDetail)
	if err != nil {
		return domain.OrderDetail{}, domain.WrapError(domain.ErrDecodeFailure, "failed to decode get order response", err).
			WithDetail("order_id", orderID)
	}
	return detail, nil
}

// ListGridpoolOrders lista las órdenes del gridpool que coinciden con el
// filtro. El filtro vacío coincide con todas.
func (c *Client) ListGridpoolOrders(ctx context.Context, gridpoolID uint64, filter domain.GridpoolOrderFilter) ([]domain.OrderDetail, error) {
	req := &pb.ListGridpoolOrdersRequest{
		GridpoolID: gridpoolID,
		Filter:     filter.ToProto(),
	}
	resp := &pb.ListGridpoolOrdersResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodListGridpoolOrders, req, resp, c.callOptions...); err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to list gridpool orders", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	details := make([]domain.OrderDetail, 0, len(resp.OrderDetails))
	for _, msg := range resp.OrderDetails {
		detail, err := domain.OrderDetailFromProto(msg)
		if err != nil {
			return nil, domain.WrapError(domain.ErrDecodeFailure, "failed to decode order in list response", err).
				WithDetail("gridpool_id", gridpoolID)
		}
		details = append(details, detail)
	}
	return details, nil
}

// ListGridpoolTrades lista los trades propios del gridpool que coinciden
// con el filtro.
func (c *Client) ListGridpoolTrades(ctx context.Context, gridpoolID uint64, filter domain.GridpoolTradeFilter) ([]domain.Trade, error) {
	req := &pb.ListGridpoolTradesRequest{
		GridpoolID: gridpoolID,
		Filter:     filter.ToProto(),
	}
	resp := &pb.ListGridpoolTradesResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodListGridpoolTrades, req, resp, c.callOptions...); err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to list gridpool trades", err).
			WithDetail("gridpool_id", gridpoolID)
	}

	trades := make([]domain.Trade, 0, len(resp.Trades))
	for _, msg := range resp.Trades {
		trade, err := domain.TradeFromProto(msg)
		if err != nil {
			return nil, domain.WrapError(domain.ErrDecodeFailure, "failed to decode trade in list response", err).
				WithDetail("gridpool_id", gridpoolID)
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

// ListPublicTrades lista trades anónimos del mercado completo. No
// requiere gridpool.
func (c *Client) ListPublicTrades(ctx context.Context, filter domain.PublicTradeFilter) ([]domain.PublicTrade, error) {
	req := &pb.ListPublicTradesRequest{Filter: filter.ToProto()}
	resp := &pb.ListPublicTradesResponse{}

	if err := c.conn.Invoke(ctx, pb.MethodListPublicTrades, req, resp, c.callOptions...); err != nil {
		return nil, domain.WrapError(grpcSDK.ErrorCodeOf(err), "failed to list public trades", err)
	}

	trades := make([]domain.PublicTrade, 0, len(resp.PublicTrades))
	for _, msg := range resp.PublicTrades {
		trade, err := domain.PublicTradeFromProto(msg)
		if err != nil {
			return nil, domain.WrapError(domain.ErrDecodeFailure, "failed to decode public trade in list response", err)
		}
		trades = append(trades, trade)
	}
	return trades, nil
}
