package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestHeuristicPolicy_ChooseMove(t *testing.T) {
	_, st := suite.New(t)
	strategic := NewHeuristicPolicy(1.0, st.Rand)

	t.Run("Prefers its own win over a block", func(t *testing.T) {
		// Given: [[A,A,_],[B,B,_],[_,_,_]] with A to move
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		// When: choosing a move
		move, err := strategic.ChooseMove(&board, x, o)

		// Then: it completes its own row rather than blocking
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Completes every line with two own marks", func(t *testing.T) {
		for i, line := range entity.Lines {
			for gap := range line {
				// Given: a board where only this line has two X and an empty cell
				board := entity.Board{}
				for j, cell := range line {
					if j != gap {
						board[cell.Row][cell.Col] = x
					}
				}

				// When: choosing a move for X
				move, err := strategic.ChooseMove(&board, x, o)

				// Then: the gap is returned
				require.NoError(t, err)
				require.Equal(t, line[gap], move, "line %d gap %d", i, gap)
			}
		}
	})

	t.Run("Blocks the opponent when no win exists", func(t *testing.T) {
		// Given: O threatens the left column and X has no win
		board := entity.Board{
			{o, x, e},
			{o, e, e},
			{e, e, x},
		}

		// When: choosing a move for X
		move, err := strategic.ChooseMove(&board, x, o)

		// Then: X blocks at the bottom-left
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("First qualifying line in scan order wins the tie", func(t *testing.T) {
		// Given: X can win on the top row at (0,0) and on the right column at (2,2)
		board := entity.Board{
			{e, x, x},
			{o, o, x},
			{o, e, e},
		}

		// When: choosing a move for X
		move, err := strategic.ChooseMove(&board, x, o)

		// Then: rows are scanned before columns
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Takes the center when nothing is urgent", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		move, err := strategic.ChooseMove(&board, o, x)

		require.NoError(t, err)
		assert.Equal(t, entity.Center, move)
	})

	t.Run("Falls back to a random empty cell when the center is taken", func(t *testing.T) {
		// Given: a draw that enters the strategy and an index picking the third empty cell
		policy := NewHeuristicPolicy(1.0, fixedRand{draw: 0, index: 2})
		board := entity.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}

		move, err := policy.ChooseMove(&board, o, x)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("A draw at or above the probability skips the strategy", func(t *testing.T) {
		// Given: a winning move exists but the draw equals the probability
		policy := NewHeuristicPolicy(0.7, fixedRand{draw: 0.7, index: 0})
		board := entity.Board{
			{e, x, x},
			{o, o, e},
			{e, e, e},
		}

		move, err := policy.ChooseMove(&board, o, x)

		// Then: the first empty cell is picked at random instead of the win at (1,2)
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Zero probability always plays randomly within empty cells", func(t *testing.T) {
		policy := NewHeuristicPolicy(0, st.Rand)
		board := entity.Board{
			{x, o, x},
			{e, o, e},
			{e, x, e},
		}

		for range 50 {
			move, err := policy.ChooseMove(&board, o, x)
			require.NoError(t, err)
			require.True(t, board.IsEmpty(move.Row, move.Col))
		}
	})

	t.Run("Full board returns ErrNoAvailableMoves", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{o, x, o},
		}

		_, err := strategic.ChooseMove(&board, x, o)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		}
		before := board

		_, err := strategic.ChooseMove(&board, x, o)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})
}
