package t343

import "errors"

// Usage errors. These are returned before any state changes.
var (
	ErrInvalidDirection    = errors.New("t343: invalid direction")
	ErrGameAlreadyOver     = errors.New("t343: game is already over")
	ErrNotInWonState       = errors.New("t343: game is not in won state")
	ErrTooManyInitialTiles = errors.New("t343: too many initial tiles for board")
	ErrInvalidSettings     = errors.New("t343: invalid settings")
	ErrInvalidSnapshot     = errors.New("t343: invalid snapshot")
)

// ErrInsufficientSpace is returned by InsertRandom when there are fewer empty
// cells than requested tiles. Nothing is inserted in that case.
var ErrInsufficientSpace = errors.New("t343: insufficient space on board")

// Board invariant errors. Reaching these through MoveAll means the board is
// corrupted.
var (
	ErrOutOfBounds       = errors.New("t343: position out of bounds")
	ErrCellOccupied      = errors.New("t343: cell is already occupied")
	ErrIncompatibleMerge = errors.New("t343: incompatible merge")
)
