package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// OptimalPolicy plays full-depth minimax and never loses.
// Scores carry no depth term, so a quick win and a slow win are worth the same;
// among equal scores the first cell in row-major order is chosen.
type OptimalPolicy struct{}

func NewOptimalPolicy() *OptimalPolicy {
	return &OptimalPolicy{}
}

func (that *OptimalPolicy) Name() string {
	return "minimax"
}

func (that *OptimalPolicy) ChooseMove(board *entity.Board, own, opponent entity.Mark) (entity.Move, error) {
	if tictactoe.Evaluate(board).Status == entity.StatusWin {
		return entity.Move{}, apperror.ErrGameFinished
	}

	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	s := &searcher{board: board, own: own, opponent: opponent}

	bestMove := emptyCells[0]
	bestScore := lossScore - 1
	for _, move := range emptyCells {
		score := s.tryMove(move, own, func() int {
			return s.search(false)
		})

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

type searcher struct {
	board    *entity.Board
	own      entity.Mark
	opponent entity.Mark
}

// search - returns the minimax value of the board for own, with maximizing telling whose turn it is.
func (that *searcher) search(maximizing bool) int {
	switch outcome := tictactoe.Evaluate(that.board); outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == that.own {
			return winScore
		}
		return lossScore
	case entity.StatusDraw:
		return drawScore
	}

	mark := that.opponent
	best := winScore + 1
	if maximizing {
		mark = that.own
		best = lossScore - 1
	}

	for _, move := range that.board.EmptyCells() {
		score := that.tryMove(move, mark, func() int {
			return that.search(!maximizing)
		})

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// tryMove - places mark, evaluates fn and always clears the cell again before returning.
func (that *searcher) tryMove(move entity.Move, mark entity.Mark, fn func() int) int {
	if err := that.board.Place(move, mark); err != nil {
		panic(fmt.Errorf("minimax explored an unavailable cell: %w", err))
	}
	defer that.board.Undo(move)

	return fn()
}
