package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/pribylovaa/social-network/internal/cache"
	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/google"
	resthttp "github.com/pribylovaa/social-network/internal/http"
	"github.com/pribylovaa/social-network/internal/http/middleware"
	"github.com/pribylovaa/social-network/internal/interceptors"
	"github.com/pribylovaa/social-network/internal/mail"
	"github.com/pribylovaa/social-network/internal/outbox"
	"github.com/pribylovaa/social-network/internal/security"
	"github.com/pribylovaa/social-network/internal/service"
	"github.com/pribylovaa/social-network/internal/storage"
	"github.com/pribylovaa/social-network/internal/storage/minio"
	"github.com/pribylovaa/social-network/internal/storage/mongo"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", slog.String("env", cfg.Env), slog.String("app", cfg.AppName))

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// Подключения к внешним системам c таймаутом.
	connCtx, connCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connCancel()

	db, err := mongo.New(connCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(closeCtx)
	}()
	log.Info("mongo_connected")

	var ledger storage.RevokedTokens = db
	if cfg.Redis.RedisURL != "" {
		rdb, err := cache.NewRedisClient(connCtx, cfg.Redis.RedisURL)
		if err != nil {
			return err
		}

		cached := cache.NewLedger(rdb, db, cfg.Redis.Prefix, cfg.Redis.NegativeTTL)
		defer cached.Close()

		ledger = cached
		log.Info("redis_connected")
	}

	objects, err := minio.New(connCtx, cfg.S3, cfg.AppName)
	if err != nil {
		return err
	}
	log.Info("s3_connected", slog.String("bucket", cfg.S3.Bucket))

	queue := outbox.New(cfg.Outbox, cfg.Timeouts.Task, log)
	tokens := security.NewTokens(cfg.Auth, db, ledger)

	deps := service.Deps{
		Storage: db,
		Ledger:  ledger,
		Objects: objects,
		Hasher:  security.NewHasher(cfg.Auth.BcryptCost),
		Tokens:  tokens,
		Tasks:   queue,
		Mailer:  mail.New(cfg.Mail, cfg.AppName),
	}

	// Без client id вход через Google отключён.
	if len(cfg.Google.ClientIDs) > 0 {
		verifier, err := google.New(ctx, cfg.Google, log)
		if err != nil {
			return err
		}
		defer verifier.Close()

		deps.Google = verifier
		log.Info("google_signin_enabled")
	}

	svc := service.New(deps, cfg.S3)
	svc.RegisterTasks(queue)
	log.Info("service_initialized")

	var (
		wg    sync.WaitGroup
		ready atomic.Bool
	)

	bgCtx, bgCancel := context.WithCancel(ctx)
	defer func() {
		bgCancel()
		wg.Wait()
	}()

	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = queue.Run(bgCtx)
	}()
	go func() {
		defer wg.Done()
		runRevokedJanitor(bgCtx, ledger, log, cfg.Auth.JanitorPeriod)
	}()

	// REST API.
	apiSrv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: resthttp.NewRouter(svc, tokens, resthttp.Options{
			Logger:         log,
			Timeout:        cfg.Timeouts.Request,
			Debug:          cfg.Env == envLocal || cfg.Env == envDev,
			MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
			Limiter:        middleware.NewIPLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window),
			Metrics:        middleware.NewMetrics(prometheus.DefaultRegisterer),
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	// Служебный HTTP: liveness, readiness, метрики.
	opsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           opsMux(&ready, db, objects),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpc_prometheus.EnableHandlingTimeHistogram()

	// gRPC-сервер: только health-check.
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecover(log),
			interceptors.UnaryLogging(log),
			interceptors.UnaryTimeout(cfg.Timeouts.Request),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecover(log),
			interceptors.StreamLogging(log),
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)

	// Рефлексия — только в local/dev.
	if cfg.Env == envLocal || cfg.Env == envDev {
		reflection.Register(grpcServer)
	}
	grpc_prometheus.Register(grpcServer)

	listener, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		return err
	}

	serveErrCh := make(chan error, 3)
	serveHTTP := func(name string, srv *http.Server) {
		log.Info("http_listen_start", slog.String("server", name), slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
	}

	go serveHTTP("api", apiSrv)
	go serveHTTP("ops", opsSrv)
	go func() {
		log.Info("grpc_listen_start", slog.String("addr", cfg.GRPC.Addr()))
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErrCh <- err
		}
	}()

	// Сервис готов: health -> SERVING и readiness.
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	ready.Store(true)

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		log.Error("serve_failed", slog.String("err", serveErr.Error()))
	}

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	ready.Store(false)

	shutdown(log, cfg.Timeouts.Shutdown, grpcServer, apiSrv, opsSrv)

	return serveErr
}

// shutdown останавливает серверы; по истечении timeout — принудительно.
func shutdown(log *slog.Logger, timeout time.Duration, grpcServer *grpc.Server, servers ...*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("http_force_stop", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
			_ = srv.Close()
		}
	}

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc_stopped")
	case <-ctx.Done():
		log.Warn("grpc_force_stop")
		grpcServer.Stop()
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func opsMux(ready *atomic.Bool, deps ...pinger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Load() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, d := range deps {
			if err := d.Ping(ctx); err != nil {
				http.Error(w, "dependency unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

type expiringLedger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// runRevokedJanitor периодически удаляет истёкшие записи журнала отзыва.
func runRevokedJanitor(ctx context.Context, ledger expiringLedger, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	t := time.NewTicker(period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := ledger.DeleteExpired(ctx, time.Now().UTC())
			if err != nil {
				log.Error("revoked_janitor_failed", slog.String("err", err.Error()))
				continue
			}
			if n > 0 {
				log.Info("revoked_janitor_done", slog.Int64("deleted", n))
			}
		}
	}
}
