package breakdown

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
	"github.com/GoSim-25-26J-441/planner-backend/internal/metrics"
)

// Instrumented records metrics and a log line per call and bounds each call by timeout.
type Instrumented struct {
	next     Generator
	provider string
	timeout  time.Duration
}

func NewInstrumented(next Generator, provider string, timeout time.Duration) *Instrumented {
	return &Instrumented{next: next, provider: provider, timeout: timeout}
}

func (g *Instrumented) Generate(ctx context.Context, req Request) ([]Draft, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	drafts, err := g.next.Generate(ctx, req)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	metrics.ObserveGeneration(g.provider, outcome, elapsed)

	log := logging.FromContext(ctx).With(
		zap.String("provider", g.provider),
		zap.String("kind", string(req.Kind)),
		zap.Duration("elapsed", elapsed),
	)
	if err != nil {
		log.Warn("breakdown generation failed", zap.String("outcome", outcome), zap.Error(err))
		return nil, err
	}

	metrics.AddDrafts(string(req.Kind), len(drafts))
	log.Info("breakdown generated", zap.Int("drafts", len(drafts)))
	return drafts, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrGeneratorDisabled):
		return "disabled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
