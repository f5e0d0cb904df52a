package entity

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// ParseMark - converts "X" or "O" (any case) into a player mark.
func ParseMark(s string) (Mark, bool) {
	switch s {
	case "X", "x":
		return PlayerX, true
	case "O", "o":
		return PlayerO, true
	default:
		return EmptyCell, false
	}
}
