package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newConsole(st *suite.Suite, input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(st.Logger, strings.NewReader(input), out), out
}

func TestConsole_ChooseMode(t *testing.T) {
	t.Run("Re-asks until a known mode is given", func(t *testing.T) {
		// Given: garbage followed by the vs computer choice
		ctx, st := suite.New(t)
		term, out := newConsole(st, "3\nabc\n2\n")

		// When: the mode is chosen
		mode, err := term.ChooseMode(ctx)

		// Then: the computer mode is returned after two complaints
		require.NoError(t, err)
		assert.Equal(t, entity.ModeVsComputer, mode)
		assert.Equal(t, 2, strings.Count(out.String(), "Please enter 1 or 2!"))
	})

	t.Run("Quits on q", func(t *testing.T) {
		ctx, st := suite.New(t)
		term, out := newConsole(st, " Q \n")

		_, err := term.ChooseMode(ctx)

		require.ErrorIs(t, err, apperror.ErrQuit)
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("Releases the reader after quitting with input left over", func(t *testing.T) {
		// Given: consoles whose input keeps going after the quit command
		ctx, st := suite.New(t)
		before := runtime.NumGoroutine()

		for range 20 {
			term, _ := newConsole(st, "q\n1\n2\n")

			// When: the player quits
			_, err := term.ChooseMode(ctx)
			require.ErrorIs(t, err, apperror.ErrQuit)
		}

		// Then: no reader goroutine stays blocked on the unread lines
		require.Eventually(t, func() bool {
			return runtime.NumGoroutine() <= before
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Prompts after Close report EOF", func(t *testing.T) {
		ctx, st := suite.New(t)
		term, _ := newConsole(st, "1\n")

		term.Close()
		_, err := term.ChooseMode(ctx)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Fails with EOF when input ends", func(t *testing.T) {
		ctx, st := suite.New(t)
		term, _ := newConsole(st, "")

		_, err := term.ChooseMode(ctx)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Stops waiting when the context is canceled", func(t *testing.T) {
		// Given: an input that never delivers a line
		_, st := suite.New(t)
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		term := New(st.Logger, reader, io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: a prompt is shown on a canceled context
		_, err := term.ChooseMode(ctx)

		// Then: the context error is returned
		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestConsole_ChooseDifficultyAndMark(t *testing.T) {
	ctx, st := suite.New(t)
	term, out := newConsole(st, "4\nhard\nz\no\n")

	difficulty, err := term.ChooseDifficulty(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Hard, difficulty)

	mark, err := term.ChooseMark(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerO, mark)

	assert.Contains(t, out.String(), "Please enter 1, 2 or 3!")
	assert.Contains(t, out.String(), "Please enter X or O!")
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Maps keypad positions to cells", func(t *testing.T) {
		ctx, st := suite.New(t)
		term, out := newConsole(st, "6\n")

		move, err := term.ReadMove(ctx, entity.Board{}, entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
		assert.Contains(t, out.String(), "Player X, enter your move")
	})

	t.Run("Rejects garbage, out of range and taken cells", func(t *testing.T) {
		// Given: the top left cell is taken
		ctx, st := suite.New(t)
		term, out := newConsole(st, "five\n0\n10\n1\n9\n")
		board := entity.Board{{entity.PlayerX}}

		// When: the player types several bad answers before a good one
		move, err := term.ReadMove(ctx, board, entity.PlayerO)

		// Then: every bad answer is explained and the last one wins
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)

		text := out.String()
		assert.Contains(t, text, "Please enter a valid number or 'q' to quit!")
		assert.Equal(t, 2, strings.Count(text, "Please enter a number between 1 and 9!"))
		assert.Contains(t, text, "That spot is already taken! Try again.")
	})

	t.Run("Quits on q", func(t *testing.T) {
		ctx, st := suite.New(t)
		term, _ := newConsole(st, "q\n")

		_, err := term.ReadMove(ctx, entity.Board{}, entity.PlayerX)

		require.ErrorIs(t, err, apperror.ErrQuit)
	})
}

func TestConsole_AskRematch(t *testing.T) {
	ctx, st := suite.New(t)
	term, out := newConsole(st, "maybe\nY\nno\n")

	again, err := term.AskRematch(ctx)
	require.NoError(t, err)
	assert.True(t, again)

	again, err = term.AskRematch(ctx)
	require.NoError(t, err)
	assert.False(t, again)

	assert.Contains(t, out.String(), "Please enter y or n!")
}

func TestConsole_Output(t *testing.T) {
	t.Run("Renders the board", func(t *testing.T) {
		_, st := suite.New(t)
		term, out := newConsole(st, "")

		term.ShowBoard(entity.Board{
			{entity.PlayerX, entity.PlayerO, entity.EmptyCell},
			{entity.EmptyCell, entity.PlayerX, entity.EmptyCell},
			{entity.PlayerO, entity.EmptyCell, entity.PlayerX},
		})

		expected := "\n" +
			" X | O |  \n" +
			"-----------\n" +
			"   | X |  \n" +
			"-----------\n" +
			" O |   | X\n" +
			"\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Announces outcomes", func(t *testing.T) {
		tests := []struct {
			name     string
			outcome  entity.Outcome
			conf     entity.MatchConfig
			expected string
		}{
			{
				name:     "Draw",
				outcome:  entity.Draw(),
				conf:     entity.TwoPlayerConfig(),
				expected: "It's a tie!\n",
			},
			{
				name:     "Human win in two player mode",
				outcome:  entity.Win(entity.PlayerO),
				conf:     entity.TwoPlayerConfig(),
				expected: "Player O wins!\n",
			},
			{
				name:     "Computer win",
				outcome:  entity.Win(entity.PlayerO),
				conf:     entity.VsComputerConfig(entity.PlayerX, entity.Hard),
				expected: "Computer wins!\n",
			},
			{
				name:     "Human beats the computer",
				outcome:  entity.Win(entity.PlayerX),
				conf:     entity.VsComputerConfig(entity.PlayerX, entity.Easy),
				expected: "Player X wins!\n",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, st := suite.New(t)
				term, out := newConsole(st, "")

				term.ShowOutcome(tt.outcome, tt.conf)

				assert.Equal(t, tt.expected, out.String())
			})
		}
	})

	t.Run("Shows score and errors", func(t *testing.T) {
		_, st := suite.New(t)
		term, out := newConsole(st, "")

		term.ShowScore(entity.Score{XWins: 2, OWins: 1, Draws: 3})
		term.ShowError(apperror.ErrCellOccupied)

		assert.Equal(t, "Score - X: 2  O: 1  Draws: 3\nError: "+apperror.ErrCellOccupied.Error()+"\n", out.String())
	})
}
