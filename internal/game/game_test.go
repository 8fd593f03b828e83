package game

import (
	"errors"
	"testing"
)

// boardFrom builds a board from rows written with the printed symbols.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows))
	if err != nil {
		t.Fatalf("NewBoard(%d) failed: %v", len(rows), err)
	}
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, ch := range row {
			switch ch {
			case 'X':
				b.Set(r, c, PlayerX)
			case 'O':
				b.Set(r, c, PlayerO)
			}
		}
	}
	return b
}

func TestHasWon(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		mark  PlayerMark
		want  bool
	}{
		{
			name:  "No winner - empty board",
			board: []string{"***", "***", "***"},
			mark:  PlayerX,
			want:  false,
		},
		{
			name:  "No winner - partial board",
			board: []string{"X**", "*O*", "***"},
			mark:  PlayerX,
			want:  false,
		},
		{
			name:  "X wins - first row",
			board: []string{"XXX", "*O*", "**O"},
			mark:  PlayerX,
			want:  true,
		},
		{
			name:  "First row of X is not a win for O",
			board: []string{"XXX", "*O*", "**O"},
			mark:  PlayerO,
			want:  false,
		},
		{
			name:  "O wins - second column",
			board: []string{"XO*", "XO*", "*O*"},
			mark:  PlayerO,
			want:  true,
		},
		{
			name:  "X wins - main diagonal",
			board: []string{"X**", "*X*", "**X"},
			mark:  PlayerX,
			want:  true,
		},
		{
			name:  "O wins - anti-diagonal",
			board: []string{"**O", "*O*", "O**"},
			mark:  PlayerO,
			want:  true,
		},
		{
			name:  "Broken line is not a win",
			board: []string{"XX*", "OOX", "***"},
			mark:  PlayerX,
			want:  false,
		},
		{
			name:  "X wins - last row on 4x4",
			board: []string{"O***", "*O**", "**O*", "XXXX"},
			mark:  PlayerX,
			want:  true,
		},
		{
			name:  "Three in a row is not enough on 4x4",
			board: []string{"XXX*", "OOO*", "****", "****"},
			mark:  PlayerX,
			want:  false,
		},
		{
			name:  "O wins - anti-diagonal on 5x5",
			board: []string{"****O", "***O*", "**O**", "*O***", "O****"},
			mark:  PlayerO,
			want:  true,
		},
		{
			name:  "X wins - last column on 6x6",
			board: []string{"*****X", "*****X", "*****X", "*****X", "*****X", "*****X"},
			mark:  PlayerX,
			want:  true,
		},
		{
			name:  "Single filled cell wins on 1x1",
			board: []string{"X"},
			mark:  PlayerX,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.board...)
			if got := HasWon(b, tt.mark); got != tt.want {
				t.Errorf("HasWon() got = %v, want %v", got, tt.want)
			}
			if got := Evaluate(b, tt.mark); got != Verdict(tt.want) {
				t.Errorf("Evaluate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasWon_EveryLineOnEverySize(t *testing.T) {
	for size := MinBoardSize; size <= MaxBoardSize; size++ {
		for _, mark := range []PlayerMark{PlayerX, PlayerO} {
			lines := map[string]func(i int) (int, int){}
			for k := range size {
				lines["row"+string(rune('0'+k))] = func(i int) (int, int) { return k, i }
				lines["col"+string(rune('0'+k))] = func(i int) (int, int) { return i, k }
			}
			lines["diagonal"] = func(i int) (int, int) { return i, i }
			lines["anti-diagonal"] = func(i int) (int, int) { return i, size - 1 - i }

			for name, at := range lines {
				b, err := NewBoard(size)
				if err != nil {
					t.Fatalf("NewBoard(%d) failed: %v", size, err)
				}
				for i := range size {
					r, c := at(i)
					b.Set(r, c, mark)
				}
				if !HasWon(b, mark) {
					t.Errorf("size %d: %s of %v not detected as a win", size, name, mark)
				}
				if HasWon(b, mark.Opponent()) {
					t.Errorf("size %d: %s of %v reported as a win for %v", size, name, mark, mark.Opponent())
				}
			}
		}
	}
}

func TestIsTie(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  bool
	}{
		{
			name:  "Empty board is not a tie",
			board: []string{"***", "***", "***"},
			want:  false,
		},
		{
			name:  "Partial board is not a tie",
			board: []string{"XO*", "*X*", "O**"},
			want:  false,
		},
		{
			name:  "Full board without a line is a tie",
			board: []string{"XOX", "XOO", "OXX"},
			want:  true,
		},
		{
			name:  "Full board with a winner is not a tie",
			board: []string{"XXX", "OOX", "OXO"},
			want:  false,
		},
		{
			name:  "Full 4x4 board without a line is a tie",
			board: []string{"XXOO", "OOXX", "XXOO", "OOXX"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTie(boardFrom(t, tt.board...)); got != tt.want {
				t.Errorf("IsTie() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	for size := 1; size <= MaxBoardSize; size++ {
		b, err := NewBoard(size)
		if err != nil {
			t.Fatalf("NewBoard(%d) failed: %v", size, err)
		}
		if b.Size() != size {
			t.Errorf("Size() got = %d, want %d", b.Size(), size)
		}
		for r, row := range b.Rows() {
			for c, cell := range row {
				if cell != Empty {
					t.Errorf("cell (%d, %d) got = %v, want empty", r, c, cell)
				}
			}
		}
	}

	for _, size := range []int{0, -1} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error got = %v, want %v", size, err, ErrInvalidSize)
		}
	}
}

func TestIsFull(t *testing.T) {
	b := boardFrom(t, "XOX", "XOO", "OX*")
	if b.IsFull() {
		t.Error("IsFull() reported a board with an empty cell as full")
	}
	b.Set(2, 2, PlayerX)
	if !b.IsFull() {
		t.Error("IsFull() reported a full board as not full")
	}
}

func TestIsSupportedSize(t *testing.T) {
	for size := -1; size <= MaxBoardSize+1; size++ {
		want := size >= 3 && size <= 6
		if got := IsSupportedSize(size); got != want {
			t.Errorf("IsSupportedSize(%d) got = %v, want %v", size, got, want)
		}
	}
}

func TestPlayerMark(t *testing.T) {
	if PlayerX.Opponent() != PlayerO || PlayerO.Opponent() != PlayerX {
		t.Error("Opponent() does not alternate between X and O")
	}
	for mark, want := range map[PlayerMark]string{Empty: "*", PlayerX: "X", PlayerO: "O"} {
		if got := mark.String(); got != want {
			t.Errorf("String() got = %q, want %q", got, want)
		}
	}
}

func TestBoardPanicsOffBoard(t *testing.T) {
	b, _ := NewBoard(3)
	defer func() {
		if recover() == nil {
			t.Error("At() off the board did not panic")
		}
	}()
	b.At(3, 0)
}
