package game

import "fmt"

// Board is a square grid of marks. Its size never changes.
type Board struct {
	size  int
	cells []PlayerMark
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]PlayerMark, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

// At returns the mark at (row, col). It panics if the position is off the board.
func (b *Board) At(row, col int) PlayerMark {
	return b.cells[b.index(row, col)]
}

// Set places mark at (row, col). It panics if the position is off the board.
func (b *Board) Set(row, col int, mark PlayerMark) {
	b.cells[b.index(row, col)] = mark
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Rows copies the board into a slice of rows.
func (b *Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, b.size)
	for r := range rows {
		rows[r] = make([]PlayerMark, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d, %d) is off a %dx%d board", row, col, b.size, b.size))
	}
	return row*b.size + col
}
