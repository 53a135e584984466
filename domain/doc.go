// Package domain contiene los tipos de negocio del mercado eléctrico, sus
// validaciones y las conversiones hacia y desde los mensajes wire.
//
// # Responsabilidades
//
// - Tipos de valor inmutables (Price, Energy, DeliveryPeriod, Order, Trade)
// - Validaciones de negocio (precisión decimal, timestamps, buckets)
// - Conversiones Domain ↔ Proto sin pérdida para campos presentes
// - Sistema de errores del dominio de trading
//
// # Tipos de Valor
//
// Los tipos de valor se construyen una vez y no mutan. Los montos usan
// decimales de precisión arbitraria, nunca punto flotante binario:
//
//	price := domain.Price{
//	    Amount:   decimal.RequireFromString("50.00"),
//	    Currency: domain.CurrencyEUR,
//	}
//	quantity := domain.Energy{MWh: decimal.RequireFromString("0.1")}
//
// DeliveryPeriod valida en el constructor: rechaza timestamps cero,
// normaliza a UTC y exige un bucket de duración del mercado:
//
//	period, err := domain.NewDeliveryPeriod(start, 15*time.Minute)
//	if err != nil {
//	    // duración o timestamp inválido
//	}
//
// # Validaciones
//
//	// Precisión decimal (InvalidInput si excede)
//	err := domain.ValidateDecimalPlaces(amount, domain.PricePrecision, "price")
//
//	// Orden completa antes de enviar
//	err := domain.ValidateOrder(order)
//
// # Conversiones
//
// Cada tipo expone ToProto y una función XxxFromProto. La codificación es
// infalible una vez construido el tipo; la decodificación retorna error
// ante mensajes incompletos:
//
//	msg := order.ToProto()
//	order2, err := domain.OrderFromProto(msg)
//
// Los tipos parche y filtro convierten solo los campos establecidos: un
// puntero nil no aparece en el mensaje wire, de modo que el servidor
// distingue "no tocar" de "poner valor cero".
//
// # Sistema de Errores
//
// Errores tipados con contexto:
//
//	err := domain.NewError(domain.ErrInvalidInput, "price precision exceeded")
//	err.WithDetail("field", "price")
//
//	// Wrapping de errores de transporte
//	err := domain.WrapError(domain.ErrConnectionLost, "stream interrupted", cause)
//
// Los errores de programación (precisión negativa) hacen panic en lugar de
// retornar error: señalan un bug del caller, no una entrada inválida.
//
// # Integración con Otros Paquetes
//
// - gridmarket/pb: mensajes wire del servicio remoto
// - gridmarket/trading: orquestación de llamadas RPC
// - gridmarket/telemetry: logs estructurados con códigos de error
package domain
