package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// UnaryTimeout ставит дедлайн d, если у вызова его ещё нет. d <= 0 — без дедлайна.
func UnaryTimeout(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok || d <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
