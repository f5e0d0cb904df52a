package entity

import (
	"github.com/google/uuid"
)

// FirstMark always opens a match, rematches included.
const FirstMark = PlayerX

type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Mark    `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
}

func NewGame() *Game {
	return &Game{
		ID:      uuid.New().String(),
		Turn:    FirstMark,
		Outcome: Ongoing(),
	}
}

// Reset - reinitializes the game for a rematch under a fresh id.
func (that *Game) Reset() {
	that.ID = uuid.New().String()
	that.Board.Reset()
	that.Turn = FirstMark
	that.Outcome = Ongoing()
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}
