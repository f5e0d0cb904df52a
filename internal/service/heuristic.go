package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// HeuristicPolicy wins if it can, blocks if it must, takes the center, or plays randomly.
// ExploreProbability is the chance of consulting that strategy at all: a draw at or above it
// skips straight to a random empty cell.
type HeuristicPolicy struct {
	ExploreProbability float64

	rng Rand
}

func NewHeuristicPolicy(exploreProbability float64, rng Rand) *HeuristicPolicy {
	return &HeuristicPolicy{
		ExploreProbability: exploreProbability,
		rng:                rng,
	}
}

func (that *HeuristicPolicy) Name() string {
	return "heuristic"
}

func (that *HeuristicPolicy) ChooseMove(board *entity.Board, own, opponent entity.Mark) (entity.Move, error) {
	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	if that.rng.Float64() < that.ExploreProbability {
		if move, ok := findWinningMove(board, own); ok {
			return move, nil
		}

		if move, ok := findWinningMove(board, opponent); ok {
			return move, nil
		}

		if board.IsEmpty(entity.Center.Row, entity.Center.Col) {
			return entity.Center, nil
		}
	}

	return emptyCells[that.rng.Intn(len(emptyCells))], nil
}

// findWinningMove - returns the empty cell of the first line holding two of mark and one empty cell.
func findWinningMove(board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	for _, line := range entity.Lines {
		owned := 0
		empties := 0

		var gap entity.Move
		for _, cell := range line {
			switch board.Cell(cell) {
			case mark:
				owned++
			case entity.EmptyCell:
				empties++
				gap = cell
			}
		}

		if owned == 2 && empties == 1 {
			return gap, true
		}
	}

	return entity.Move{}, false
}
