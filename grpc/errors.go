package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xKoRx/gridmarket/domain"
)

// ErrorCodeOf clasifica un error de transporte en el código de error del
// dominio. Errores que ya traen un código de dominio lo conservan; errores
// ajenos a gRPC mapean a UNKNOWN.
//
// codes.Canceled se reporta como STREAM_CLOSED: la llamada terminó porque
// el caller la canceló localmente.
func ErrorCodeOf(err error) domain.ErrorCode {
	if err == nil {
		return ""
	}

	var te *domain.TradingError
	if errors.As(err, &te) {
		return te.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return domain.ErrStreamClosed
	}

	s, ok := status.FromError(err)
	if !ok {
		return domain.ErrUnknown
	}
	return CodeFromStatus(s.Code())
}

// CodeFromStatus mapea un código de status gRPC al código de error del
// dominio.
func CodeFromStatus(code codes.Code) domain.ErrorCode {
	switch code {
	case codes.Unavailable, codes.Aborted:
		return domain.ErrConnectionLost
	case codes.DeadlineExceeded:
		return domain.ErrTimeout
	case codes.Canceled:
		return domain.ErrStreamClosed
	case codes.ResourceExhausted:
		return domain.ErrResourceExhausted
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.PermissionDenied:
		return domain.ErrPermissionDenied
	case codes.Unauthenticated:
		return domain.ErrUnauthenticated
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange, codes.AlreadyExists:
		return domain.ErrServerRejected
	default:
		return domain.ErrUnknown
	}
}
