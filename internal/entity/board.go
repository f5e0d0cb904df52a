package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Board is a 3x3 grid stored row-major. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// NewBoard - builds a board from rows, used mostly by tests and renderers.
func NewBoard(rows [BoardSize][BoardSize]Mark) *Board {
	board := Board(rows)
	return &board
}

// IsEmpty - reports whether the cell holds no mark. Out-of-range coordinates panic.
func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == EmptyCell
}

func (that *Board) Cell(move Move) Mark {
	return that[move.Row][move.Col]
}

// Place - puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(move Move, mark Mark) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if !that.IsEmpty(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = mark

	return nil
}

// Undo - clears a cell. Only the search uses it to roll back hypothetical moves.
func (that *Board) Undo(move Move) {
	that[move.Row][move.Col] = EmptyCell
}

// EmptyCells - returns the empty coordinates in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Count - returns how many cells hold mark.
func (that *Board) Count(mark Mark) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

func (that *Board) Reset() {
	*that = Board{}
}
