package pb

import (
	"encoding"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Codec serializa los mensajes de este paquete para gRPC. Acepta tanto los
// mensajes wire propios (encoding.BinaryMarshaler) como mensajes generados
// (proto.Message). Se aplica por llamada vía grpc.ForceCodec y nunca se
// registra globalmente, porque comparte el nombre "proto" con el códec
// estándar que otros clientes del proceso (por ejemplo los exporters OTLP)
// necesitan intacto.
type Codec struct{}

// Marshal serializa un mensaje saliente.
func (Codec) Marshal(v interface{}) ([]byte, error) {
	switch m := v.(type) {
	case encoding.BinaryMarshaler:
		return m.MarshalBinary()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("failed to marshal message of unsupported type %T", v)
	}
}

// Unmarshal decodifica un mensaje entrante in place.
func (Codec) Unmarshal(data []byte, v interface{}) error {
	switch m := v.(type) {
	case encoding.BinaryUnmarshaler:
		return m.UnmarshalBinary(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("failed to unmarshal message of unsupported type %T", v)
	}
}

// Name identifica el códec ante gRPC. El servidor responde con su códec
// proto estándar, que es compatible byte a byte.
func (Codec) Name() string { return "proto" }
