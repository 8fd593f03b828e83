package game

// Verdict is the result of evaluating a board for one player.
type Verdict bool

const (
	NotWon Verdict = false
	Won    Verdict = true
)

// Evaluate reports whether mark holds a complete line on the board.
func Evaluate(b *Board, mark PlayerMark) Verdict {
	return Verdict(HasWon(b, mark))
}

// HasWon checks rows, columns and both diagonals for a complete line of mark.
func HasWon(b *Board, mark PlayerMark) bool {
	return wonRow(b, mark) || wonColumn(b, mark) || wonDiagonal(b, mark) || wonAntiDiagonal(b, mark)
}

// IsTie checks if the board is full with no winner.
func IsTie(b *Board) bool {
	if !b.IsFull() {
		return false
	}
	return !HasWon(b, PlayerX) && !HasWon(b, PlayerO)
}

func wonRow(b *Board, mark PlayerMark) bool {
	for r := range b.size {
		if lineOf(b, mark, func(i int) (int, int) { return r, i }) {
			return true
		}
	}
	return false
}

func wonColumn(b *Board, mark PlayerMark) bool {
	for c := range b.size {
		if lineOf(b, mark, func(i int) (int, int) { return i, c }) {
			return true
		}
	}
	return false
}

func wonDiagonal(b *Board, mark PlayerMark) bool {
	return lineOf(b, mark, func(i int) (int, int) { return i, i })
}

func wonAntiDiagonal(b *Board, mark PlayerMark) bool {
	return lineOf(b, mark, func(i int) (int, int) { return i, b.size - 1 - i })
}

// lineOf walks the size cells produced by at and reports whether all of them hold mark.
func lineOf(b *Board, mark PlayerMark, at func(i int) (row, col int)) bool {
	for i := range b.size {
		if b.At(at(i)) != mark {
			return false
		}
	}
	return true
}
