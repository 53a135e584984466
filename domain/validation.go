package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Precisión decimal máxima que acepta el mercado por campo.
const (
	// PricePrecision es la cantidad máxima de decimales de un precio.
	PricePrecision = 2
	// QuantityPrecision es la cantidad máxima de decimales de una cantidad en MWh.
	QuantityPrecision = 5
)

// Buckets de duración válidos para un período de entrega.
var deliveryDurations = []time.Duration{
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	60 * time.Minute,
}

// ValidationError representa un error de validación de entrada.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implementa la interfaz error.
func (v *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", v.Field, v.Value, v.Message)
}

// NewValidationError crea un nuevo ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ValidateDecimalPlaces valida que un valor no tenga más decimales que los
// permitidos. La comparación es matemática, no textual: "5.00" tiene cero
// decimales significativos y pasa con places=0.
//
// Un places negativo es un bug del caller y produce panic, no un error
// recuperable.
//
// Example:
//
//	err := domain.ValidateDecimalPlaces(decimal.RequireFromString("123.45"), 2, "price")
//	// => nil
//	err = domain.ValidateDecimalPlaces(decimal.RequireFromString("123.456"), 2, "price")
//	// => validation error
func ValidateDecimalPlaces(value decimal.Decimal, places int, field string) error {
	if places < 0 {
		panic(fmt.Sprintf("decimal places must be non-negative, got %d", places))
	}

	scaled := value.Shift(int32(places))
	if !scaled.IsInteger() {
		return NewValidationError(field, value,
			fmt.Sprintf("must have at most %d decimal places", places))
	}

	return nil
}

// ParseDecimal parsea un decimal desde texto. Valores no numéricos, NaN o
// infinitos fallan con ValidationError; el tipo decimal no los representa,
// así que el rechazo ocurre en la frontera de ingreso.
func ParseDecimal(s string, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, NewValidationError(field, s, "not a finite decimal number")
	}
	return d, nil
}

// DecimalFromFloat convierte un float64 a decimal rechazando NaN e
// infinitos antes de que entren al dominio.
func DecimalFromFloat(f float64, field string) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, NewValidationError(field, f, "not a finite decimal number")
	}
	return decimal.NewFromFloat(f), nil
}

// ValidateTimestamp valida que un timestamp esté establecido y lo normaliza
// a UTC. Un time.Time cero equivale a "sin zona horaria ni instante": se
// rechaza en lugar de adivinar.
func ValidateTimestamp(ts time.Time, field string) (time.Time, error) {
	if ts.IsZero() {
		return time.Time{}, NewValidationError(field, ts, "timestamp must be set and timezone-aware")
	}
	return ts.UTC(), nil
}

// ValidateDeliveryDuration valida que una duración coincida exactamente con
// un bucket del mercado.
func ValidateDeliveryDuration(d time.Duration) error {
	for _, allowed := range deliveryDurations {
		if d == allowed {
			return nil
		}
	}
	return NewValidationError("duration", d,
		"duration must be one of the market buckets (5, 15, 30 or 60 minutes)")
}

// ValidateOrder valida una orden completa antes de enviarla al mercado.
//
// Verifica precisión de precio y cantidad, área de entrega y período.
// Retorna el primer error encontrado.
func ValidateOrder(order Order) error {
	if err := ValidateDecimalPlaces(order.Price.Amount, PricePrecision, "price"); err != nil {
		return err
	}
	if order.Price.Currency == CurrencyUnspecified || order.Price.Currency == "" {
		return NewValidationError("currency", order.Price.Currency, "currency must be specified")
	}

	if err := ValidateDecimalPlaces(order.Quantity.MWh, QuantityPrecision, "quantity"); err != nil {
		return err
	}
	if order.Quantity.MWh.Sign() <= 0 {
		return NewValidationError("quantity", order.Quantity.MWh, "quantity must be positive")
	}

	if order.DeliveryArea.Code == "" {
		return NewValidationError("delivery_area", order.DeliveryArea.Code, "delivery area code cannot be empty")
	}

	if _, err := ValidateTimestamp(order.DeliveryPeriod.Start, "delivery_period.start"); err != nil {
		return err
	}
	if err := ValidateDeliveryDuration(order.DeliveryPeriod.Duration); err != nil {
		return err
	}

	if order.Type == OrderTypeUnspecified || order.Type == "" {
		return NewValidationError("type", order.Type, "order type must be specified")
	}
	if order.Side != MarketSideBuy && order.Side != MarketSideSell {
		return NewValidationError("side", order.Side, "side must be BUY or SELL")
	}

	if order.ValidUntil != nil {
		if _, err := ValidateTimestamp(*order.ValidUntil, "valid_until"); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUpdateOrder valida los campos presentes de un parche. Los campos
// nil no se validan porque no viajan.
func ValidateUpdateOrder(update UpdateOrder) error {
	if update.IsEmpty() {
		return NewValidationError("update", nil, "at least one field must be set")
	}

	if update.Price != nil {
		if err := ValidateDecimalPlaces(update.Price.Amount, PricePrecision, "price"); err != nil {
			return err
		}
	}
	if update.Quantity != nil {
		if err := ValidateDecimalPlaces(update.Quantity.MWh, QuantityPrecision, "quantity"); err != nil {
			return err
		}
		if update.Quantity.MWh.Sign() <= 0 {
			return NewValidationError("quantity", update.Quantity.MWh, "quantity must be positive")
		}
	}
	if update.ValidUntil != nil {
		if _, err := ValidateTimestamp(*update.ValidUntil, "valid_until"); err != nil {
			return err
		}
	}

	return nil
}
