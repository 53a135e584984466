package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradingErrorFormat(t *testing.T) {
	err := NewError(ErrServerRejected, "order rejected by market")
	if got := err.Error(); got != "[SERVER_REJECTED] order rejected by market" {
		t.Fatalf("unexpected error string: %q", got)
	}

	cause := errors.New("connection reset")
	wrapped := WrapError(ErrConnectionLost, "stream interrupted", cause)
	if got := wrapped.Error(); got != "[CONNECTION_LOST] stream interrupted: connection reset" {
		t.Fatalf("unexpected wrapped error string: %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected errors.Is to find the cause through Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrNotFound, CodeOf(NewError(ErrNotFound, "no such order")))
	assert.Equal(t, ErrInvalidInput, CodeOf(NewValidationError("price", "1.234", "too many decimals")))
	assert.Equal(t, ErrUnknown, CodeOf(errors.New("plain error")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))

	// El código sobrevive aunque el error viaje envuelto en fmt.Errorf.
	deep := fmt.Errorf("while canceling: %w", NewError(ErrTimeout, "deadline exceeded"))
	assert.Equal(t, ErrTimeout, CodeOf(deep))
}

func TestIsRetryable(t *testing.T) {
	retryable := []ErrorCode{ErrConnectionLost, ErrTimeout, ErrResourceExhausted}
	for _, code := range retryable {
		assert.True(t, IsRetryable(code), "el código %s debería ser retriable", code)
	}

	permanent := []ErrorCode{ErrInvalidInput, ErrServerRejected, ErrNotFound, ErrPermissionDenied, ErrUnknown}
	for _, code := range permanent {
		assert.False(t, IsRetryable(code), "el código %s no debería ser retriable", code)
	}
}

func TestWithDetail(t *testing.T) {
	err := NewError(ErrServerRejected, "rejected").
		WithDetail("gridpool_id", uint64(123)).
		WithDetail("order_id", uint64(456))

	assert.Equal(t, uint64(123), err.Details["gridpool_id"])
	assert.Equal(t, uint64(456), err.Details["order_id"])
}
