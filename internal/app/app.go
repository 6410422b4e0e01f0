package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/goexpress"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"github.com/ferdiebergado/kubodir/internal/config"
	"github.com/ferdiebergado/kubodir/internal/health"
	"github.com/ferdiebergado/kubodir/internal/middleware"
	"github.com/ferdiebergado/kubodir/internal/user"
	"github.com/ferdiebergado/kubodir/internal/userpb"
)

// App runs the user directory: the gRPC API and the operations HTTP listener.
type App struct {
	config     *config.Config
	grpcServer *grpc.Server
	httpServer *http.Server
	health     *grpchealth.Server
	monitor    *health.Monitor
	logger     *zap.Logger
}

func New(cfg *config.Config, provider *Provider) *App {
	monitor := newMonitor(cfg, provider)

	svc := user.NewService(provider.Repo, provider.TxMgr, provider.Hasher, provider.Validator, provider.Publisher)
	handler := user.NewHandler(svc, monitor, provider.Logger)

	grpcServer := newGRPCServer(&cfg.GRPC, provider)
	healthServer := grpchealth.NewServer()

	userpb.RegisterUserServiceServer(grpcServer, handler)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	provider.Router.Use(goexpress.RecoverFromPanic)
	provider.Router.Use(middleware.LogRequest)
	mountOpsRoutes(provider.Router, monitor)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      provider.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration,
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration,
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration,
	}

	return &App{
		config:     cfg,
		grpcServer: grpcServer,
		httpServer: httpServer,
		health:     healthServer,
		monitor:    monitor,
		logger:     provider.Logger,
	}
}

func newMonitor(cfg *config.Config, provider *Provider) *health.Monitor {
	monitor := health.NewMonitor(cfg.App.Version, cfg.Health.Timeout.Duration)
	monitor.Register("database", provider.Repo.Ping)
	if provider.Cache != nil {
		monitor.Register("cache", provider.Cache.Ping)
	}
	return monitor
}

func newGRPCServer(cfg *config.GRPC, provider *Provider) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		middleware.Recover(provider.Logger),
		middleware.RequestID,
		middleware.Metrics,
		middleware.LogCall(provider.Logger),
		middleware.ContextGuard,
	}

	if provider.Verifier != nil {
		interceptors = append(interceptors, middleware.Authenticate(provider.Verifier,
			"/grpc.health.v1.",
			"/grpc.reflection.",
			userpb.HealthCheckMethod,
		))
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(interceptors...),
		grpc.MaxRecvMsgSize(cfg.MaxMsgBytes),
		grpc.MaxSendMsgSize(cfg.MaxMsgBytes),
		grpc.MaxConcurrentStreams(uint32(cfg.MaxConcurrentStreams)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.KeepaliveTime.Duration,
			Timeout: cfg.KeepaliveTimeout.Duration,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             cfg.KeepaliveTime.Duration / 2,
			PermitWithoutStream: true,
		}),
	}

	if cfg.MaxWorkers > 0 {
		opts = append(opts, grpc.NumStreamWorkers(uint32(cfg.MaxWorkers)))
	}

	return grpc.NewServer(opts...)
}

// Start listens on the configured ports and serves until ctx is done.
func (a *App) Start(ctx context.Context) error {
	var lc net.ListenConfig

	grpcLis, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", a.config.GRPC.Port))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	httpLis, err := lc.Listen(ctx, "tcp", a.httpServer.Addr)
	if err != nil {
		_ = grpcLis.Close()
		return fmt.Errorf("listen http: %w", err)
	}

	return a.Serve(ctx, grpcLis, httpLis)
}

// Serve runs both servers and the health monitor on the given listeners.
// When ctx is done, in-flight calls are drained for at most the shutdown timeout.
func (a *App) Serve(ctx context.Context, grpcLis, httpLis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server listening...", "address", grpcLis.Addr().String())
		if err := a.grpcServer.Serve(grpcLis); err != nil {
			return fmt.Errorf("serve grpc: %w", err)
		}
		slog.Info("gRPC server has stopped.")
		return nil
	})

	g.Go(func() error {
		slog.Info("Operations server listening...", "address", httpLis.Addr().String())
		if err := a.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		slog.Info("Operations server has stopped.")
		return nil
	})

	g.Go(func() error {
		return a.monitor.Run(gctx, a.config.Health.Interval.Duration, a.health, userpb.ServiceName)
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	slog.Info("Shutting down servers...")
	a.health.Shutdown()

	timeout := a.config.GRPC.ShutdownTimeout.Duration
	stopped := make(chan struct{})
	go func() {
		a.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		slog.Warn("Graceful stop timed out, closing open connections.", "timeout", timeout)
		a.grpcServer.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	_ = a.logger.Sync()
	return nil
}
