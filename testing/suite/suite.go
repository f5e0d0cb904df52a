package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/telemetry"
)

const (
	maxWaitDuration = 30 * time.Second
	seed            = 20240917
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand    *rand.Rand
	Metrics *telemetry.Metrics
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider().Meter(telemetry.InstrumentationName))
	if err != nil {
		t.Fatalf("could not create metrics: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		Rand:    rand.New(rand.NewSource(seed)),
		Metrics: metrics,
	}
}
