package game

import "fmt"

// Move is a zero-based board position.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// ValidateMove checks that the move lands on an empty cell inside the board.
func ValidateMove(b *Board, m Move) error {
	if !b.InBounds(m.Row, m.Col) {
		return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, m, b.size, b.size)
	}
	if b.At(m.Row, m.Col) != Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, m)
	}
	return nil
}

// ApplyMove places mark on the board. Callers validate the move first.
func ApplyMove(b *Board, mark PlayerMark, m Move) {
	b.Set(m.Row, m.Col, mark)
}
