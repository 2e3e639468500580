package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const limiterCleanupInterval = time.Minute

// start запускает HTTP и gRPC серверы и останавливает их после отмены ctx
func (a *App) start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var grpcServer *grpc.Server
	var grpcListener net.Listener
	if a.config.GRPCAddress != "" {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("failed to listen for gRPC: %w", err)
		}
		grpcListener = lis
		grpcServer = grpc.NewServer()
		healthpb.RegisterHealthServer(grpcServer, a.health.server)
		reflection.Register(grpcServer)
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	if grpcServer != nil {
		go func() {
			a.logger.Info("Starting gRPC health server", zap.String("address", a.config.GRPCAddress))
			if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errCh <- fmt.Errorf("grpc server failed: %w", err)
			}
		}()
	}

	background, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.health.run(background, healthInterval)

	stop := make(chan struct{})
	defer close(stop)
	for _, l := range a.limiter {
		go l.RunCleanup(limiterCleanupInterval, stop)
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case runErr = <-errCh:
		a.logger.Error("server failed", zap.Error(runErr))
	}

	return errors.Join(runErr, a.shutdown(srv, grpcServer))
}

// shutdown перестает принимать запросы и дожидается воркеров очереди
func (a *App) shutdown(srv *http.Server, grpcServer *grpc.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if grpcServer != nil {
		a.health.server.Shutdown()
		grpcServer.GracefulStop()
	}

	if a.queue != nil {
		if err := a.queue.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to drain job queue: %w", err))
		}
	}

	a.logger.Info("server stopped")
	return errors.Join(errs...)
}
