package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Policy picks the next move for own on a board that still has empty cells.
// Implementations may mutate the board while deciding but must restore it before returning.
type Policy interface {
	ChooseMove(board *entity.Board, own, opponent entity.Mark) (entity.Move, error)
	Name() string
}

// Rand is the random source used by the heuristic policy.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// HeuristicTiers holds the strategic-play probability per heuristic difficulty.
type HeuristicTiers struct {
	Easy   float64
	Medium float64
}

var DefaultTiers = HeuristicTiers{Easy: 0.3, Medium: 0.7}

// NewPolicy - maps a difficulty tier onto its policy.
func NewPolicy(difficulty entity.Difficulty, tiers HeuristicTiers, rng Rand) (Policy, error) {
	switch difficulty {
	case entity.Easy:
		return NewHeuristicPolicy(tiers.Easy, rng), nil
	case entity.Medium:
		return NewHeuristicPolicy(tiers.Medium, rng), nil
	case entity.Hard:
		return NewOptimalPolicy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}
