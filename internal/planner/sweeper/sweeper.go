package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/metrics"
)

const interruptedReason = "enrichment interrupted"

// StaleFailer flips applications stuck in pending enrichment to failed.
type StaleFailer interface {
	FailStaleEnrichments(ctx context.Context, cutoff time.Time, errText string) (int64, error)
}

// Sweeper periodically fails enrichments whose process died before
// recording an outcome.
type Sweeper struct {
	store      StaleFailer
	staleAfter time.Duration
	log        *zap.Logger
	now        func() time.Time

	cron *cron.Cron
}

func New(store StaleFailer, staleAfter time.Duration, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		store:      store,
		staleAfter: staleAfter,
		log:        log,
		now:        time.Now,
	}
}

// RunOnce sweeps a single time and returns the number of applications failed.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.staleAfter)

	n, err := s.store.FailStaleEnrichments(ctx, cutoff, interruptedReason)
	if err != nil {
		return 0, fmt.Errorf("sweep stale enrichments: %w", err)
	}
	if n > 0 {
		metrics.StaleEnrichmentsFailed(n)
		s.log.Info("failed stale enrichments", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	}
	return n, nil
}

// Start schedules RunOnce on the given cron spec, e.g. "@every 5m".
func (s *Sweeper) Start(ctx context.Context, spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Error("sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sweeper %q: %w", spec, err)
	}

	s.cron = c
	c.Start()
	s.log.Info("sweeper started", zap.String("schedule", spec), zap.Duration("stale_after", s.staleAfter))
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
