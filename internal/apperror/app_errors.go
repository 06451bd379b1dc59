package apperror

import "errors"

var (
	ErrOutOfBounds    = errors.New("coordinates are out of bounds")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidPlayer  = errors.New("invalid player mark")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
	ErrMalformedInput = errors.New("malformed input")
)
