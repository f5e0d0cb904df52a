package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// requireNeverLoses expands every opponent reply while policy answers for own,
// failing if any line of play ends with the opponent winning.
func requireNeverLoses(t *testing.T, policy Policy, board *entity.Board, turn, own entity.Mark) {
	t.Helper()

	outcome := tictactoe.Evaluate(board)
	if outcome.IsTerminal() {
		require.NotEqual(t, entity.Win(own.Opponent()), outcome, "lost on board %v", *board)
		return
	}

	if turn == own {
		move, err := policy.ChooseMove(board, own, own.Opponent())
		require.NoError(t, err)
		require.NoError(t, board.Place(move, own))
		requireNeverLoses(t, policy, board, turn.Opponent(), own)
		board.Undo(move)

		return
	}

	for _, move := range board.EmptyCells() {
		require.NoError(t, board.Place(move, turn))
		requireNeverLoses(t, policy, board, turn.Opponent(), own)
		board.Undo(move)
	}
}

func TestOptimalPolicy_ChooseMove(t *testing.T) {
	policy := NewOptimalPolicy()

	t.Run("Opens in the first cell of scan order", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: X chooses its first move
		move, err := policy.ChooseMove(&board, x, o)

		// Then: every opening scores a draw and the first one is kept
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Second move after any reply never loses", func(t *testing.T) {
		for _, reply := range (&entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}).EmptyCells() {
			board := entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}
			require.NoError(t, board.Place(reply, o))

			requireNeverLoses(t, policy, &board, x, x)
		}
	})

	t.Run("Takes the win instead of the block", func(t *testing.T) {
		// Given: [[A,A,_],[B,B,_],[_,_,_]] with A to move
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		move, err := policy.ChooseMove(&board, x, o)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Blocks a threat it cannot outrun", func(t *testing.T) {
		// Given: X threatens the bottom row and O has no immediate win
		board := entity.Board{
			{e, e, e},
			{e, o, e},
			{x, x, e},
		}

		move, err := policy.ChooseMove(&board, o, x)

		// Then: every other cell loses, so the block is chosen despite coming last in scan order
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Restores the board after searching", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, o, e},
			{e, e, x},
		}
		before := board

		_, err := policy.ChooseMove(&board, o, x)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Full board is a precondition violation", func(t *testing.T) {
		// Given: [[A,B,A],[B,A,B],[B,A,B]]
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{o, x, o},
		}
		require.True(t, board.IsFull())

		_, err := policy.ChooseMove(&board, x, o)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Won board is rejected", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		_, err := policy.ChooseMove(&board, o, x)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestOptimalPolicy_SelfPlayDraws(t *testing.T) {
	// Given: minimax playing both sides from an empty board
	policy := NewOptimalPolicy()
	game := entity.NewGame()

	// When: the game is played out
	for !game.IsFinished() {
		move, err := policy.ChooseMove(&game.Board, game.Turn, game.Turn.Opponent())
		require.NoError(t, err)
		require.NoError(t, tictactoe.MakeTurn(game, game.Turn, move))
	}

	// Then: it always ends in a draw on a full board
	assert.Equal(t, entity.Draw(), game.Outcome)
	assert.True(t, game.Board.IsFull())
}

func TestOptimalPolicy_NeverLoses(t *testing.T) {
	policy := NewOptimalPolicy()

	t.Run("Playing first as X", func(t *testing.T) {
		requireNeverLoses(t, policy, &entity.Board{}, x, x)
	})

	t.Run("Playing second as O", func(t *testing.T) {
		requireNeverLoses(t, policy, &entity.Board{}, x, o)
	})
}
