// Package utils provee utilidades comunes para el SDK de Gridmarket.
//
// # Utilidades Incluidas
//
// - UUID: Generación de UUIDv7 ordenables por tiempo
// - Timestamp: Helpers para timestamps Unix en ms/μs y marcas de eventos
// - JSON: Parsing, validación y manipulación de JSON
//
// # Uso de UUID
//
// Generación de identificadores únicos ordenables:
//
//	id := utils.GenerateUUIDv7()
//	// => "018c1f2e-7a44-7df2-8c3a-9b54e1f0a2d7"
//
// # Uso de Timestamp
//
// Medición de latencia y timestamps:
//
//	start := utils.NowUnixMilli()
//	// ... operación ...
//	elapsed := utils.ElapsedMs(start)
//
//	// Marcas de un evento de mercado a su paso por el pipeline
//	ts := utils.NewEventTimestamps()
//	ts.MarkReceived(utils.NowUnixMilli())
//	lag := ts.ObservationLagMs()
//
// # Uso de JSON
//
// Parsing y validación de JSON:
//
//	// Validar
//	err := utils.ValidateJSON(data)
//
//	// Parsear a map
//	m, err := utils.JSONToMap(data)
//
//	// Extraer campos
//	price := utils.ExtractString(m, "trade.price")
//
//	// Pretty print
//	fmt.Println(utils.PrettyPrint(data))
//
// # Integración con Gridmarket
//
// Este paquete es usado por:
//   - cmd/gridwatch: identificadores de ejecución, journal JSON y latencias
//   - telemetry: atributos de instancia
package utils
