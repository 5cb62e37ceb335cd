package bootstrap

import (
	"context"
	"log/slog"

	"lifepass-admin/internal/infra/scheduler"
	"lifepass-admin/internal/pkg/config"
	"lifepass-admin/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the stale allocation sweep. A sweep may use at most half the interval.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, sweeper commands.AllocationSweeper, logger *slog.Logger) error {
	s, err := scheduler.New(logger)
	if err != nil {
		return err
	}
	interval := cfg.Scheduler.SweepInterval
	if err := s.RegisterSweep(sweeper, interval, interval/2); err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return nil
}
