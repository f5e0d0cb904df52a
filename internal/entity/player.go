package entity

// Controller tells who decides the moves for a mark.
type Controller uint8

const (
	Human Controller = iota
	Machine
)

func (that Controller) String() string {
	if that == Machine {
		return "machine"
	}

	return "human"
}
