package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xKoRx/gridmarket/domain"
)

func TestCodeFromStatus(t *testing.T) {
	tests := []struct {
		grpcCode codes.Code
		want     domain.ErrorCode
	}{
		{codes.Unavailable, domain.ErrConnectionLost},
		{codes.Aborted, domain.ErrConnectionLost},
		{codes.DeadlineExceeded, domain.ErrTimeout},
		{codes.Canceled, domain.ErrStreamClosed},
		{codes.ResourceExhausted, domain.ErrResourceExhausted},
		{codes.NotFound, domain.ErrNotFound},
		{codes.PermissionDenied, domain.ErrPermissionDenied},
		{codes.Unauthenticated, domain.ErrUnauthenticated},
		{codes.InvalidArgument, domain.ErrServerRejected},
		{codes.FailedPrecondition, domain.ErrServerRejected},
		{codes.Internal, domain.ErrUnknown},
		{codes.Unimplemented, domain.ErrUnknown},
	}

	for _, tt := range tests {
		if got := CodeFromStatus(tt.grpcCode); got != tt.want {
			t.Fatalf("expected %s for grpc code %s, got %s", tt.want, tt.grpcCode, got)
		}
	}
}

func TestErrorCodeOf(t *testing.T) {
	if got := ErrorCodeOf(nil); got != domain.ErrorCode("") {
		t.Fatalf("expected empty code for nil error, got %s", got)
	}

	err := status.Error(codes.Unavailable, "server down")
	if got := ErrorCodeOf(err); got != domain.ErrConnectionLost {
		t.Fatalf("expected CONNECTION_LOST, got %s", got)
	}

	if got := ErrorCodeOf(context.DeadlineExceeded); got != domain.ErrTimeout {
		t.Fatalf("expected TIMEOUT for context deadline, got %s", got)
	}
	if got := ErrorCodeOf(context.Canceled); got != domain.ErrStreamClosed {
		t.Fatalf("expected STREAM_CLOSED for context cancel, got %s", got)
	}

	// Un error del dominio conserva su código aunque pase por el canal.
	domainErr := domain.NewError(domain.ErrNotFound, "no such order")
	if got := ErrorCodeOf(domainErr); got != domain.ErrNotFound {
		t.Fatalf("expected NOT_FOUND preserved, got %s", got)
	}

	if got := ErrorCodeOf(errors.New("something else")); got != domain.ErrUnknown {
		t.Fatalf("expected UNKNOWN for plain error, got %s", got)
	}
}
