package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthInterval = 30 * time.Second
	probeTimeout   = 5 * time.Second
)

// healthProbe проверка одной внешней зависимости
type healthProbe struct {
	name  string
	check func(ctx context.Context) error
}

// healthReporter публикует доступность БД и Shlink через стандартный gRPC health сервис.
// Общий статус ("") SERVING, только если прошли все проверки.
type healthReporter struct {
	server *health.Server
	probes []healthProbe
	logger *zap.Logger
}

func newHealthReporter(logger *zap.Logger, probes ...healthProbe) *healthReporter {
	return &healthReporter{
		server: health.NewServer(),
		probes: probes,
		logger: logger,
	}
}

func (r *healthReporter) add(p healthProbe) {
	r.probes = append(r.probes, p)
}

func (r *healthReporter) report(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING

	for _, p := range r.probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := p.check(probeCtx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
			r.logger.Warn("health probe failed", zap.String("probe", p.name), zap.Error(err))
		}
		r.server.SetServingStatus(p.name, status)
	}

	r.server.SetServingStatus("", overall)
}

// run проверяет зависимости сразу и затем каждые interval до отмены ctx
func (r *healthReporter) run(ctx context.Context, interval time.Duration) {
	r.report(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}
