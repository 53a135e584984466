package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// Message es el contrato mínimo de todos los mensajes de este paquete.
type Message interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

// marshaler permite anidar mensajes propios sin ciclos de tipo.
type marshaler interface {
	MarshalBinary() ([]byte, error)
}

// unmarshaler es la contraparte de marshaler para decodificar.
type unmarshaler interface {
	UnmarshalBinary(data []byte) error
}

// appendMessage serializa un submensaje propio como campo LEN.
func appendMessage(b []byte, num protowire.Number, m marshaler) ([]byte, error) {
	payload, err := m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload), nil
}

// appendProto serializa un well-known type generado como campo LEN.
func appendProto(b []byte, num protowire.Number, m proto.Message) ([]byte, error) {
	payload, err := proto.Marshal(m)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload), nil
}

// appendVarintField serializa un campo varint (enums, uint64).
func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendStringField serializa un campo string como LEN.
func appendStringField(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// appendPackedVarints serializa un repeated de varints en forma packed.
func appendPackedVarints(b []byte, num protowire.Number, vals []uint64) []byte {
	if len(vals) == 0 {
		return b
	}
	var payload []byte
	for _, v := range vals {
		payload = protowire.AppendVarint(payload, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload)
}

// consumeMessage decodifica un submensaje propio desde un campo LEN.
// Retorna los bytes consumidos del buffer de entrada.
func consumeMessage(b []byte, m unmarshaler) (int, error) {
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.UnmarshalBinary(payload); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeProto decodifica un well-known type generado desde un campo LEN.
func consumeProto(b []byte, m proto.Message) (int, error) {
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := proto.Unmarshal(payload, m); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeVarint decodifica un campo varint.
func consumeVarint(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumeString decodifica un campo string.
func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumeRepeatedVarints decodifica un repeated de varints aceptando tanto la
// forma packed (un solo campo LEN) como la expandida (un varint por tag).
func consumeRepeatedVarints(b []byte, typ protowire.Type, acc []uint64) ([]uint64, int, error) {
	if typ == protowire.VarintType {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		return append(acc, v), n, nil
	}
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	for len(payload) > 0 {
		v, m := protowire.ConsumeVarint(payload)
		if m < 0 {
			return nil, 0, protowire.ParseError(m)
		}
		acc = append(acc, v)
		payload = payload[m:]
	}
	return acc, n, nil
}

// skipField salta un campo desconocido preservando compatibilidad forward.
func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

// FieldCount retorna cuántos campos top-level están presentes en un mensaje
// serializado. Es el equivalente wire de contar campos con presencia, útil
// para verificar parches sparse y filtros vacíos.
func FieldCount(data []byte) (int, error) {
	count := 0
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		data = data[n:]
		n, err := skipField(data, num, typ)
		if err != nil {
			return 0, err
		}
		data = data[n:]
		count++
	}
	return count, nil
}
