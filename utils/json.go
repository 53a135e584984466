package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValidateJSON verifica si los datos son JSON válido.
//
// Example:
//
//	data := []byte(`{"trade_id":452}`)
//	err := utils.ValidateJSON(data)
//	if err != nil {
//	    // No es JSON válido
//	}
func ValidateJSON(data []byte) error {
	var js interface{}
	return json.Unmarshal(data, &js)
}

// ValidateJSONString verifica si el string es JSON válido.
func ValidateJSONString(s string) error {
	return ValidateJSON([]byte(s))
}

// PrettyPrint formatea JSON con indentación para debugging.
//
// Example:
//
//	data := []byte(`{"trade_id":452,"price":{"amount":"50.2","currency":"EUR"}}`)
//	pretty := utils.PrettyPrint(data)
//	fmt.Println(pretty)
//	// Salida:
//	// {
//	//   "trade_id": 452,
//	//   "price": {
//	//     "amount": "50.2",
//	//     "currency": "EUR"
//	//   }
//	// }
func PrettyPrint(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data) // Retornar original si falla
	}
	return buf.String()
}

// PrettyPrintString formatea un string JSON con indentación.
func PrettyPrintString(s string) string {
	return PrettyPrint([]byte(s))
}

// Compact compacta JSON removiendo espacios innecesarios.
func Compact(data []byte) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return data // Retornar original si falla
	}
	return buf.Bytes()
}

// MarshalJSON serializa cualquier valor a JSON.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalJSONIndent serializa con indentación.
func MarshalJSONIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// UnmarshalJSON deserializa JSON a un valor.
//
// Example:
//
//	var result map[string]interface{}
//	err := utils.UnmarshalJSON(jsonBytes, &result)
func UnmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// JSONToMap convierte JSON a map[string]interface{}.
//
// Útil para inspeccionar payloads dinámicos, como las entradas del journal.
//
// Example:
//
//	data := []byte(`{"kind":"public_trade","trade_id":452}`)
//	m, err := utils.JSONToMap(data)
//	if err == nil {
//	    fmt.Println(m["kind"]) // => "public_trade"
//	}
func JSONToMap(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal(data, &result)
	return result, err
}

// MapToJSON convierte un map a JSON.
func MapToJSON(m map[string]interface{}) ([]byte, error) {
	return json.Marshal(m)
}

// ExtractField extrae un campo de un JSON parseado a map.
//
// Soporta campos anidados con notación de punto.
//
// Example:
//
//	data := map[string]interface{}{
//	    "price": map[string]interface{}{
//	        "currency": "EUR",
//	    },
//	}
//	currency := utils.ExtractField(data, "price.currency")
//	// => "EUR"
func ExtractField(m map[string]interface{}, path string) interface{} {
	parts := strings.Split(path, ".")
	var current interface{} = m

	for _, part := range parts {
		switch v := current.(type) {
		case map[string]interface{}:
			var ok bool
			current, ok = v[part]
			if !ok {
				return nil
			}
		default:
			return nil
		}
	}

	return current
}

// ExtractString es como ExtractField pero retorna string.
//
// Si el campo no existe o no es string, retorna "".
func ExtractString(m map[string]interface{}, path string) string {
	v := ExtractField(m, path)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// ExtractInt64 es como ExtractField pero retorna int64.
//
// Si el campo no existe o no es numérico, retorna 0.
func ExtractInt64(m map[string]interface{}, path string) int64 {
	v := ExtractField(m, path)
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	}
	return 0
}

// ExtractFloat64 es como ExtractField pero retorna float64.
func ExtractFloat64(m map[string]interface{}, path string) float64 {
	v := ExtractField(m, path)
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	}
	return 0
}

// ExtractBool es como ExtractField pero retorna bool.
func ExtractBool(m map[string]interface{}, path string) bool {
	v := ExtractField(m, path)
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

// ToJSONString convierte cualquier valor a JSON string.
//
// En caso de error, retorna string vacío.
func ToJSONString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// MustMarshalJSON serializa a JSON o entra en pánico.
//
// Útil para casos donde el error es catastrófico.
func MustMarshalJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("MustMarshalJSON: %v", err))
	}
	return data
}
