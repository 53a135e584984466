package domain

import (
	"errors"
	"fmt"
)

// ErrorCode representa un código de error del dominio de trading.
type ErrorCode string

// Códigos de error estándar
const (
	// Errores de entrada (recuperables corrigiendo la llamada)
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Errores de transporte/conexión
	ErrConnectionLost ErrorCode = "CONNECTION_LOST"
	ErrStreamClosed   ErrorCode = "STREAM_CLOSED"
	ErrTimeout        ErrorCode = "TIMEOUT"

	// Errores reportados por el servidor
	ErrServerRejected    ErrorCode = "SERVER_REJECTED"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrPermissionDenied  ErrorCode = "PERMISSION_DENIED"
	ErrUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	ErrResourceExhausted ErrorCode = "RESOURCE_EXHAUSTED"

	// Errores de decodificación de respuestas
	ErrDecodeFailure ErrorCode = "DECODE_FAILURE"

	// Fallback
	ErrUnknown ErrorCode = "UNKNOWN"
)

// TradingError representa un error del dominio de trading con contexto.
type TradingError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implementa la interfaz error.
func (e *TradingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implementa la interfaz errors.Unwrap.
func (e *TradingError) Unwrap() error {
	return e.Wrapped
}

// WithDetail agrega un detalle al error.
func (e *TradingError) WithDetail(key string, value interface{}) *TradingError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewError crea un nuevo TradingError.
//
// Example:
//
//	err := domain.NewError(domain.ErrInvalidInput, "price precision exceeded")
func NewError(code ErrorCode, message string) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError envuelve un error existente con contexto de trading.
//
// Example:
//
//	err := domain.WrapError(domain.ErrConnectionLost, "stream interrupted", cause)
func WrapError(code ErrorCode, message string, wrapped error) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// CodeOf extrae el ErrorCode de cualquier error de la cadena. Los errores
// de validación cuentan como entrada inválida; errores ajenos al dominio
// retornan UNKNOWN.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var te *TradingError
	if errors.As(err, &te) {
		return te.Code
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ErrInvalidInput
	}
	return ErrUnknown
}

// IsRetryable indica si un error es retriable (puede reintentarse).
func IsRetryable(code ErrorCode) bool {
	switch code {
	case ErrConnectionLost, ErrTimeout, ErrResourceExhausted:
		return true
	default:
		return false
	}
}

// IsInvalidInput indica si un error proviene de entrada inválida del caller.
func IsInvalidInput(err error) bool {
	return CodeOf(err) == ErrInvalidInput
}
