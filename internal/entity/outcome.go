package entity

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWin
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWin:
		return "win"
	case StatusDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Outcome is the result of evaluating a board. Winner is set only for StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

// IsTerminal - true for a win or a draw; no further moves are legal.
func (that Outcome) IsTerminal() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	if that.Status == StatusWin {
		return that.Winner.String() + " wins"
	}

	return that.Status.String()
}
