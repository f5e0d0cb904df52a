package entity

import "fmt"

const BoardSize = 3

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Position - returns the keypad position of the move, 1 through 9.
func (that Move) Position() int {
	return that.Row*BoardSize + that.Col + 1
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// MoveFromPosition - converts a keypad position (1-9, row-major) into a move.
func MoveFromPosition(position int) (Move, bool) {
	if position < 1 || position > BoardSize*BoardSize {
		return Move{}, false
	}

	return Move{Row: (position - 1) / BoardSize, Col: (position - 1) % BoardSize}, true
}
