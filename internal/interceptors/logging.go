// interceptors содержит серверные интерсепторы служебного gRPC-сервера
// (health-check): логирование, перехват паник и дедлайн.
package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/social-network/internal/pkg/log"
)

const mdRequestID = "x-request-id"

// callLogger строит логгер вызова: request_id (из metadata или новый UUID),
// метод и адрес клиента.
func callLogger(ctx context.Context, base *slog.Logger, method string) *slog.Logger {
	var rid string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(mdRequestID); len(v) > 0 && v[0] != "" {
			rid = v[0]
		}
	}
	if rid == "" {
		rid = uuid.NewString()
	}

	addr := "-"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr = p.Addr.String()
	}

	return base.With(
		slog.String("request_id", rid),
		slog.String("method", method),
		slog.String("peer", addr),
	)
}

func logDone(l *slog.Logger, err error, start time.Time) {
	code := status.Code(err)

	level := slog.LevelInfo
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		level = slog.LevelError
	}

	l.LogAttrs(context.Background(), level, "grpc",
		slog.String("code", code.String()),
		slog.Duration("dur", time.Since(start)),
	)
}

// UnaryLogging кладёт логгер вызова в контекст и пишет итоговую запись "grpc".
func UnaryLogging(base *slog.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		l := callLogger(ctx, base, info.FullMethod)
		resp, err := handler(log.Into(ctx, l), req)

		logDone(l, err, start)
		return resp, err
	}
}

// StreamLogging — то же для потоковых вызовов (health Watch).
func StreamLogging(base *slog.Logger) grpc.StreamServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()

		l := callLogger(ss.Context(), base, info.FullMethod)
		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: log.Into(ss.Context(), l)})

		logDone(l, err, start)
		return err
	}
}

// wrappedStream подменяет контекст потока.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }
