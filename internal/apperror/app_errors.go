package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrQuit              = errors.New("player quit")
)
