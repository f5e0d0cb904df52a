package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type decisionRecorder interface {
	RecordDecision(ctx context.Context, policy string, elapsed time.Duration)
}

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game, mark entity.Mark) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	policy   Policy
	recorder decisionRecorder
}

func NewBotService(logger *slog.Logger, policy Policy, recorder decisionRecorder) BotService {
	return &botService{
		logger:   logger.With("component", "bot", "policy", policy.Name()),
		policy:   policy,
		recorder: recorder,
	}
}

// MakeTurn - asks the policy for a move and applies it to the game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game, mark entity.Mark) (entity.Move, error) {
	started := time.Now()

	move, err := that.policy.ChooseMove(&game.Board, mark, mark.Opponent())
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	elapsed := time.Since(started)
	that.recorder.RecordDecision(ctx, that.policy.Name(), elapsed)
	that.logger.DebugContext(ctx, "bot chose move", "game", game.ID, "mark", mark.String(), "move", move.Position(), "elapsed", elapsed)

	if err = tictactoe.MakeTurn(game, mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
