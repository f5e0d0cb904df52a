package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	shutdown, err := telemetry.Init(ctx, conf.Metrics)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		// ctx is already canceled on a signal, flushing needs a fresh one.
		if err = shutdown(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	metrics, err := telemetry.NewMetrics(otel.Meter(telemetry.InstrumentationName))
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("random source seeded", "seed", seed)

	term := console.New(logger, os.Stdin, os.Stdout)
	defer term.Close()
	term.Greet()

	tiers := service.HeuristicTiers{Easy: conf.Heuristic.Easy, Medium: conf.Heuristic.Medium}
	session := usecase.NewSession(logger, term, term, metrics, tiers, rand.New(rand.NewSource(seed)))

	if err = session.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished", "score", session.Score())

	return nil
}
