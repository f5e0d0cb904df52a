package entity

// Score tallies finished matches for the current run only.
type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Score) Add(outcome Outcome) {
	switch {
	case outcome.Status == StatusDraw:
		that.Draws++
	case outcome.Status == StatusWin && outcome.Winner == PlayerX:
		that.XWins++
	case outcome.Status == StatusWin && outcome.Winner == PlayerO:
		that.OWins++
	}
}

func (that Score) Total() int {
	return that.XWins + that.OWins + that.Draws
}
