package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/social-network/internal/pkg/log"
)

var errInternal = status.Error(codes.Internal, "internal server error")

func logPanic(ctx context.Context, base *slog.Logger, method string, rec any) {
	l, ok := log.Lookup(ctx)
	if !ok {
		l = base
	}
	if l == nil {
		l = slog.Default()
	}

	l.Error("panic_recovered",
		slog.String("method", method),
		slog.Any("panic", rec),
		slog.String("stack", string(debug.Stack())),
	)
}

// UnaryRecover превращает панику обработчика в codes.Internal без деталей.
func UnaryRecover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(ctx, base, info.FullMethod, rec)
				resp, err = nil, errInternal
			}
		}()

		return handler(ctx, req)
	}
}

// StreamRecover — то же для потоковых вызовов.
func StreamRecover(base *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(ss.Context(), base, info.FullMethod, rec)
				err = errInternal
			}
		}()

		return handler(srv, ss)
	}
}
