package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Sweeper releases allocations left behind by orders that never resolved.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type Scheduler struct {
	s      gocron.Scheduler
	logger *slog.Logger
}

func New(logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{s: s, logger: logger}, nil
}

// RegisterSweep runs sweeper every interval. Overlapping runs are skipped.
func (s *Scheduler) RegisterSweep(sweeper Sweeper, interval, timeout time.Duration) error {
	_, err := s.s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			if _, err := sweeper.Sweep(ctx); err != nil {
				s.logger.Error("allocation sweep failed", "error", err.Error())
			}
		}),
		gocron.WithName("allocation-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	return err
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.s.Shutdown()
}
