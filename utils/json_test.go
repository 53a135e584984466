package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONToMapAndExtract(t *testing.T) {
	data := []byte(`{
		"kind": "public_trade",
		"trade_id": 452,
		"price": {"amount": "50.2", "currency": "EUR"},
		"resold": false
	}`)

	m, err := JSONToMap(data)
	require.NoError(t, err)

	assert.Equal(t, "public_trade", ExtractString(m, "kind"))
	assert.Equal(t, int64(452), ExtractInt64(m, "trade_id"))
	assert.Equal(t, "EUR", ExtractString(m, "price.currency"))
	assert.Equal(t, "50.2", ExtractString(m, "price.amount"))
	assert.False(t, ExtractBool(m, "resold"))
}

func TestExtractFieldMissingPath(t *testing.T) {
	m := map[string]interface{}{
		"price": map[string]interface{}{"currency": "EUR"},
	}

	assert.Nil(t, ExtractField(m, "price.amount"))
	assert.Nil(t, ExtractField(m, "missing.currency"))
	// Descender dentro de un valor que no es mapa tampoco resuelve
	assert.Nil(t, ExtractField(m, "price.currency.code"))
}

func TestExtractTypedFallbacks(t *testing.T) {
	m := map[string]interface{}{
		"quantity": 0.25,
		"note":     "imbalance",
	}

	assert.Equal(t, "", ExtractString(m, "quantity"), "Un número no se convierte en string")
	assert.Equal(t, int64(0), ExtractInt64(m, "note"))
	assert.Equal(t, float64(0.25), ExtractFloat64(m, "quantity"))
	assert.False(t, ExtractBool(m, "note"))
}

func TestValidateJSON(t *testing.T) {
	assert.NoError(t, ValidateJSON([]byte(`{"ok":true}`)))
	assert.Error(t, ValidateJSON([]byte(`{"ok":`)))
	assert.NoError(t, ValidateJSONString(`[1,2,3]`))
}

func TestPrettyPrintAndCompact(t *testing.T) {
	compact := []byte(`{"trade_id":452,"side":"BUY"}`)

	pretty := PrettyPrint(compact)
	assert.Contains(t, pretty, "\n", "El pretty print se indenta en varias líneas")
	assert.Equal(t, string(compact), string(Compact([]byte(pretty))))

	// Con JSON inválido se devuelve la entrada sin tocar
	bad := []byte(`not-json`)
	assert.Equal(t, string(bad), PrettyPrint(bad))
	assert.Equal(t, string(bad), string(Compact(bad)))
}

func TestToJSONString(t *testing.T) {
	s := ToJSONString(map[string]interface{}{"gridpool_id": 1})
	assert.Equal(t, `{"gridpool_id":1}`, s)

	// Valores no serializables devuelven vacío en lugar de error
	assert.Equal(t, "", ToJSONString(make(chan int)))
}

func TestMustMarshalJSONPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshalJSON(make(chan int))
	})
}
