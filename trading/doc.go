// Package trading provee el cliente tipado de la API de trading de
// electricidad.
//
// Este paquete es la superficie pública de la librería: una operación
// por capacidad remota del servicio, con tipos del dominio en la firma
// y ninguna estructura wire expuesta. La conversión a proto, la
// autenticación y la clasificación de errores ocurren por debajo.
//
// # Operaciones
//
// Mutación de órdenes:
//
//   - CreateGridpoolOrder: crea una orden (validada localmente primero)
//   - UpdateGridpoolOrder: parche disperso con FieldMask
//   - CancelGridpoolOrder: cancela una orden
//   - CancelAllGridpoolOrders: cancela todas las del gridpool
//
// Consulta:
//
//   - GetGridpoolOrder, ListGridpoolOrders
//   - ListGridpoolTrades, ListPublicTrades
//
// Suscripción (server-streaming):
//
//   - StreamGridpoolOrders, StreamGridpoolTrades, StreamPublicTrades
//
// # Uso Básico
//
// Conectar y crear una orden:
//
//	config := trading.DefaultConfig("grid.example.com:443")
//	config.APIKey = os.Getenv("GRIDMARKET_API_KEY")
//
//	client, err := trading.Connect(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	order := domain.Order{
//	    DeliveryArea:   area,
//	    DeliveryPeriod: period,
//	    Type:           domain.OrderTypeLimit,
//	    Side:           domain.MarketSideBuy,
//	    Price:          domain.Price{Amount: decimal.RequireFromString("50.00"), Currency: domain.CurrencyEUR},
//	    Quantity:       domain.Energy{MWh: decimal.RequireFromString("0.1")},
//	}
//
//	detail, err := client.CreateGridpoolOrder(ctx, gridpoolID, order)
//
// # Streams
//
// Las suscripciones son pull: Recv bloquea hasta el siguiente evento.
// El fin ordenado del stream es io.EOF; todo otro corte llega como
// *domain.TradingError clasificado.
//
//	stream, err := client.StreamPublicTrades(ctx, domain.PublicTradeFilter{})
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	for {
//	    trade, err := stream.Recv()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Procesar trade...
//	}
//
// # Validación Local
//
// CreateGridpoolOrder y UpdateGridpoolOrder validan la entrada antes de
// enviar un solo byte: precisión de precio (2 decimales) y cantidad
// (5 decimales), cantidad positiva, área y período bien formados. Las
// violaciones retornan *domain.ValidationError sin tocar la red.
//
// # Errores
//
// Todo error remoto llega como *domain.TradingError con un código
// estable (CONNECTION_LOST, TIMEOUT, SERVER_REJECTED, NOT_FOUND, etc).
// domain.IsRetryable(domain.CodeOf(err)) distingue fallas transitorias
// de rechazos permanentes.
//
// # Conexión Propia vs Prestada
//
// Connect crea y posee el canal gRPC (Close lo cierra). NewClient opera
// sobre una conexión existente y no la cierra nunca; útil para compartir
// un canal entre clientes o para tests con conexiones falsas.
package trading
