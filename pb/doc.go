// Package pb define el esquema wire del servicio gridmarket.v1.ElectricityTradingService.
//
// El servicio no publica stubs generados consumibles como módulo Go, así que
// este paquete mantiene a mano los mensajes del contrato: structs planos con
// MarshalBinary/UnmarshalBinary sobre protobuf wire format
// (google.golang.org/protobuf/encoding/protowire). Los well-known types se
// embeben como mensajes generados reales (google.protobuf.Timestamp,
// google.protobuf.FieldMask, google.type.Decimal).
//
// # Contrato
//
// Los números de campo y valores de enum de este paquete SON el contrato wire:
// cambiarlos rompe interoperabilidad. Campos nuevos se agregan con números
// nuevos; los decoders ignoran campos desconocidos.
//
// # Presencia
//
// Semántica proto3 con optional explícito:
//
//   - Escalares no-pointer: el valor cero no se serializa.
//   - Campos pointer (mensajes, enums opcionales, strings opcionales):
//     nil = ausente, no-nil = presente (incluso con valor cero).
//   - Repeated: slice vacío = ausente; enums repetidos van packed.
//
// # Uso
//
//	req := &pb.CreateGridpoolOrderRequest{
//	    GridpoolId: 123,
//	    Order:      orderPB,
//	}
//	err := conn.Invoke(ctx, pb.MethodCreateGridpoolOrder, req, resp,
//	    grpc.ForceCodec(pb.Codec{}))
//
// # Referencias
//
// - google.golang.org/protobuf/encoding/protowire: framing de bajo nivel
// - grpc/encoding: contrato de codec
package pb
