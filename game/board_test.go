package game

import (
	"errors"
	"math"
	"testing"
)

// newTestBoard builds a board with mines at exactly the given coordinates
func newTestBoard(t *testing.T, width, height, depth int, mines ...Coord) *Board {
	t.Helper()

	board, err := NewBoard(width, height, depth)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d, %d): %v", width, height, depth, err)
	}
	for _, c := range mines {
		board.setMine(c)
	}
	board.generated = true
	board.computeAdjacency()
	return board
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, depth int
	}{
		{"zero width", 0, 3, 3},
		{"zero height", 3, 0, 3},
		{"zero depth", 3, 3, 0},
		{"negative", -1, 3, 3},
		{"all zero", 0, 0, 0},
		{"overflowing volume", math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{"too many cells", 1000, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoard(tt.width, tt.height, tt.depth)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewBoard() error = %v, want ErrInvalidDimensions", err)
			}
			if board != nil {
				t.Errorf("NewBoard() returned a board alongside an error")
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	board, err := NewBoard(2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}

	if board.NumCells() != 24 {
		t.Errorf("NumCells() = %d, want 24", board.NumCells())
	}
	if board.Width() != 2 || board.Height() != 3 || board.Depth() != 4 {
		t.Errorf("dimensions = %dx%dx%d, want 2x3x4", board.Width(), board.Height(), board.Depth())
	}
	if board.IsGenerated() {
		t.Error("fresh board reports a mine layout")
	}

	for _, cell := range board.Cells() {
		if cell.State() != Hidden || cell.isMine || cell.NumMines() != 0 {
			t.Fatalf("%v not blank: state %v, mine %v, count %d", cell, cell.State(), cell.isMine, cell.NumMines())
		}
		got, err := board.CellAt(cell.Coord())
		if err != nil || got != cell {
			t.Fatalf("CellAt(%v) = %v, %v", cell.Coord(), got, err)
		}
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	board := newTestBoard(t, 3, 3, 3)

	for _, c := range []Coord{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}, {-1, 0, 0}} {
		if _, err := board.CellAt(c); !errors.Is(err, ErrCoordinateOutOfBounds) {
			t.Errorf("CellAt(%v) error = %v, want ErrCoordinateOutOfBounds", c, err)
		}
	}
}

func TestComputeAdjacency(t *testing.T) {
	board := newTestBoard(t, 3, 3, 3, Coord{0, 0, 0}, Coord{2, 2, 2})

	tests := []struct {
		coord Coord
		want  uint8
	}{
		{Coord{1, 1, 1}, 2},
		{Coord{1, 0, 0}, 1},
		{Coord{2, 2, 1}, 1},
		{Coord{2, 0, 0}, 0},
		{Coord{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		cell, _ := board.CellAt(tt.coord)
		if cell.NumMines() != tt.want {
			t.Errorf("NumMines() at %v = %d, want %d", tt.coord, cell.NumMines(), tt.want)
		}
	}
}

func TestHiddenCells(t *testing.T) {
	board := newTestBoard(t, 2, 2, 2, Coord{1, 1, 1})

	if err := board.ToggleFlag(Coord{0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := board.Reveal(Coord{1, 0, 0}); err != nil {
		t.Fatal(err)
	}

	if got := len(board.HiddenCells()); got != 6 {
		t.Errorf("len(HiddenCells()) = %d, want 6", got)
	}
}
