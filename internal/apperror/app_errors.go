package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("position is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidBoardSize = errors.New("board size is out of range")
	ErrInvalidCellSize  = errors.New("cell size must be a positive finite number")
)
