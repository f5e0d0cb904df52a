package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - applies a move for player and advances the game to the next turn or a terminal outcome.
func MakeTurn(game *entity.Game, player entity.Mark, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if err := game.Board.Place(move, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(game, player)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.Mark) {
	game.Outcome = Evaluate(&game.Board)
	if !game.Outcome.IsTerminal() {
		game.Turn = player.Opponent()
	}
}

// Evaluate - reports a win for the first complete line, a draw on a full board, ongoing otherwise.
func Evaluate(board *entity.Board) entity.Outcome {
	if winner := lineOwner(board); winner != entity.EmptyCell {
		return entity.Win(winner)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.Ongoing()
}

// lineOwner - returns the mark of the first completed line or EmptyCell.
func lineOwner(board *entity.Board) entity.Mark {
	for _, line := range entity.Lines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}
