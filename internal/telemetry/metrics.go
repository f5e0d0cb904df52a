package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Metrics records match results, applied moves and machine decision latency.
type Metrics struct {
	matches   metric.Int64Counter
	moves     metric.Int64Counter
	decisions metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	matches, err := meter.Int64Counter("tictactoe.matches",
		metric.WithDescription("Finished matches by result"))
	if err != nil {
		return nil, fmt.Errorf("failed to create matches counter: %w", err)
	}

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Applied moves by controller"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}

	decisions, err := meter.Float64Histogram("tictactoe.decision.duration",
		metric.WithDescription("Time a policy spent choosing a move"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create decision histogram: %w", err)
	}

	return &Metrics{
		matches:   matches,
		moves:     moves,
		decisions: decisions,
	}, nil
}

func (that *Metrics) RecordMatch(ctx context.Context, outcome entity.Outcome) {
	result := "draw"
	if outcome.Status == entity.StatusWin {
		result = outcome.Winner.String()
	}

	that.matches.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (that *Metrics) RecordMove(ctx context.Context, controller entity.Controller) {
	that.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("controller", controller.String())))
}

func (that *Metrics) RecordDecision(ctx context.Context, policy string, elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	that.decisions.Record(ctx, ms, metric.WithAttributes(attribute.String("policy", policy)))
}
