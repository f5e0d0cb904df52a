package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrBotRequired = errors.New("bot is required to play against the computer")

// Input is the collaborator supplying human decisions.
type Input interface {
	ChooseMode(ctx context.Context) (entity.Mode, error)
	ChooseDifficulty(ctx context.Context) (entity.Difficulty, error)
	ChooseMark(ctx context.Context) (entity.Mark, error)
	ReadMove(ctx context.Context, board entity.Board, mark entity.Mark) (entity.Move, error)
	AskRematch(ctx context.Context) (bool, error)
}

// Output is the collaborator rendering the match.
type Output interface {
	ShowBoard(board entity.Board)
	ShowOutcome(outcome entity.Outcome, conf entity.MatchConfig)
	ShowScore(score entity.Score)
	ShowError(err error)
}

type recorder interface {
	RecordMatch(ctx context.Context, outcome entity.Outcome)
	RecordMove(ctx context.Context, controller entity.Controller)
}

// MatchController owns one game and drives it from the first move to a terminal outcome.
// It is not safe for concurrent use: the bot searches on the game's board in place.
type MatchController struct {
	logger   *slog.Logger
	input    Input
	output   Output
	recorder recorder

	config entity.MatchConfig
	bot    service.BotService
	game   *entity.Game
}

func NewMatchController(logger *slog.Logger, input Input, output Output, recorder recorder) *MatchController {
	return &MatchController{
		logger:   logger.With("component", "match"),
		input:    input,
		output:   output,
		recorder: recorder,

		config: entity.TwoPlayerConfig(),
		game:   entity.NewGame(),
	}
}

// Configure - sets who controls each mark and starts a fresh game.
func (that *MatchController) Configure(conf entity.MatchConfig, bot service.BotService) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid match config: %w", err)
	}

	if conf.Mode == entity.ModeVsComputer && bot == nil {
		return ErrBotRequired
	}

	that.config = conf
	that.bot = bot
	that.game.Reset()

	return nil
}

// Rematch - clears the board and hands the first move back to X under the same config.
func (that *MatchController) Rematch() {
	that.game.Reset()
}

func (that *MatchController) Game() *entity.Game {
	return that.game
}

func (that *MatchController) Config() entity.MatchConfig {
	return that.config
}

// Play - runs turns until the game reaches a win or a draw.
func (that *MatchController) Play(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "game", that.game.ID)
	log.InfoContext(ctx, "match started", "mode", that.config.Mode, "difficulty", that.config.Difficulty)

	for !that.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return entity.Ongoing(), fmt.Errorf("match interrupted: %w", err)
		}

		that.output.ShowBoard(that.game.Board)

		if err := that.playTurn(ctx); err != nil {
			return entity.Ongoing(), err
		}
	}

	outcome := that.game.Outcome

	that.output.ShowBoard(that.game.Board)
	that.output.ShowOutcome(outcome, that.config)
	that.recorder.RecordMatch(ctx, outcome)

	log.InfoContext(ctx, "match finished", "outcome", outcome.String())

	return outcome, nil
}

// playTurn - obtains and applies one move for the mark whose turn it is.
func (that *MatchController) playTurn(ctx context.Context) error {
	mark := that.game.Turn
	controller := that.config.ControllerOf(mark)

	if controller == entity.Machine {
		if _, err := that.bot.MakeTurn(ctx, that.game, mark); err != nil {
			return fmt.Errorf("failed to make machine turn: %w", err)
		}

		that.recorder.RecordMove(ctx, controller)

		return nil
	}

	move, err := that.readHumanMove(ctx, mark)
	if err != nil {
		return err
	}

	if err = tictactoe.MakeTurn(that.game, mark, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.recorder.RecordMove(ctx, controller)

	return nil
}

// readHumanMove - asks until the collaborator supplies an in-range, empty cell.
func (that *MatchController) readHumanMove(ctx context.Context, mark entity.Mark) (entity.Move, error) {
	for {
		move, err := that.input.ReadMove(ctx, that.game.Board, mark)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		switch {
		case !move.InBounds():
			that.output.ShowError(fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move))
		case !that.game.Board.IsEmpty(move.Row, move.Col):
			that.output.ShowError(fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move))
		default:
			return move, nil
		}
	}
}
