package game

import "errors"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark uint8

const (
	// Player marks
	Empty PlayerMark = iota
	PlayerX
	PlayerO
)

// Board boundaries
const (
	MinBoardSize = 3
	MaxBoardSize = 6
)

var (
	ErrInvalidSize    = errors.New("invalid board size")
	ErrOutOfBounds    = errors.New("move is out of bounds")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrInvalidWeights = errors.New("invalid size weights")
)

// String returns the symbol printed for the mark.
func (m PlayerMark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "*"
	}
}

// Opponent returns the mark that plays after m.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerO {
		return PlayerX
	}
	return PlayerO
}

// IsSupportedSize reports whether a game may be played on a board of the given size.
func IsSupportedSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}
