package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mode string

const (
	ModeTwoPlayers Mode = "pvp"
	ModeVsComputer Mode = "pvc"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty - accepts a tier name or its menu number (1 easy, 2 medium, 3 hard).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(Easy):
		return Easy, nil
	case "2", string(Medium):
		return Medium, nil
	case "3", string(Hard):
		return Hard, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, s)
	}
}

// MatchConfig describes who controls each mark for one match.
type MatchConfig struct {
	Mode        Mode
	HumanMark   Mark
	MachineMark Mark
	Difficulty  Difficulty
}

func TwoPlayerConfig() MatchConfig {
	return MatchConfig{Mode: ModeTwoPlayers}
}

func VsComputerConfig(humanMark Mark, difficulty Difficulty) MatchConfig {
	return MatchConfig{
		Mode:        ModeVsComputer,
		HumanMark:   humanMark,
		MachineMark: humanMark.Opponent(),
		Difficulty:  difficulty,
	}
}

func (that MatchConfig) Validate() error {
	switch that.Mode {
	case ModeTwoPlayers:
		return nil
	case ModeVsComputer:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, that.Mode)
	}

	if !that.HumanMark.IsPlayer() || that.MachineMark != that.HumanMark.Opponent() {
		return fmt.Errorf("%w: human %s, machine %s", apperror.ErrInvalidMark, that.HumanMark, that.MachineMark)
	}

	switch that.Difficulty {
	case Easy, Medium, Hard:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, that.Difficulty)
	}
}

// ControllerOf - reports whether a human or the machine moves for mark.
func (that MatchConfig) ControllerOf(mark Mark) Controller {
	if that.Mode == ModeVsComputer && mark == that.MachineMark {
		return Machine
	}

	return Human
}
