package game

import "errors"

var (
	ErrInvalidDimensions     = errors.New("invalid board dimensions")
	ErrInvalidMineCount      = errors.New("invalid mine count")
	ErrTooManyMines          = errors.New("too many mines")
	ErrCoordinateOutOfBounds = errors.New("coordinate out of bounds")
	ErrCellNotHidable        = errors.New("cell cannot be flagged")
	ErrSessionOver           = errors.New("session is over")
	ErrAlreadyGenerated      = errors.New("board already generated")
	ErrInvalidSnapshot       = errors.New("invalid snapshot")
)
