package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

type botRecorder interface {
	recorder
	RecordDecision(ctx context.Context, policy string, elapsed time.Duration)
}

// Session plays matches back to back until the player declines a rematch or quits.
type Session struct {
	root     *slog.Logger
	logger   *slog.Logger
	input    Input
	output   Output
	recorder botRecorder

	tiers service.HeuristicTiers
	rng   service.Rand

	controller *MatchController
	score      entity.Score
}

func NewSession(logger *slog.Logger, input Input, output Output, recorder botRecorder, tiers service.HeuristicTiers, rng service.Rand) *Session {
	return &Session{
		root:     logger,
		logger:   logger.With("component", "session"),
		input:    input,
		output:   output,
		recorder: recorder,

		tiers: tiers,
		rng:   rng,

		controller: NewMatchController(logger, input, output, recorder),
	}
}

func (that *Session) Score() entity.Score {
	return that.score
}

// Run - asks for the mode once, then plays matches with rematches in between.
// A quit request from the player ends the session without an error.
func (that *Session) Run(ctx context.Context) error {
	err := that.run(ctx)
	if errors.Is(err, apperror.ErrQuit) {
		that.logger.InfoContext(ctx, "player quit", "score", that.score)
		return nil
	}

	return err
}

func (that *Session) run(ctx context.Context) error {
	mode, err := that.input.ChooseMode(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose mode: %w", err)
	}

	first := true
	for {
		if first || mode == entity.ModeVsComputer {
			if err = that.configure(ctx, mode); err != nil {
				return err
			}
		} else {
			that.controller.Rematch()
		}
		first = false

		outcome, err := that.controller.Play(ctx)
		if err != nil {
			return fmt.Errorf("failed to play match: %w", err)
		}

		that.score.Add(outcome)
		that.output.ShowScore(that.score)

		again, err := that.input.AskRematch(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for rematch: %w", err)
		}

		if !again {
			that.logger.InfoContext(ctx, "session finished", "score", that.score)
			return nil
		}
	}
}

// configure - builds the match config for mode, choosing difficulty and mark against the computer.
func (that *Session) configure(ctx context.Context, mode entity.Mode) error {
	if mode == entity.ModeTwoPlayers {
		if err := that.controller.Configure(entity.TwoPlayerConfig(), nil); err != nil {
			return fmt.Errorf("failed to configure match: %w", err)
		}

		return nil
	}

	if mode != entity.ModeVsComputer {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	difficulty, err := that.input.ChooseDifficulty(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose difficulty: %w", err)
	}

	humanMark, err := that.input.ChooseMark(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose mark: %w", err)
	}

	policy, err := service.NewPolicy(difficulty, that.tiers, that.rng)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	bot := service.NewBotService(that.root, policy, that.recorder)
	if err = that.controller.Configure(entity.VsComputerConfig(humanMark, difficulty), bot); err != nil {
		return fmt.Errorf("failed to configure match: %w", err)
	}

	return nil
}
