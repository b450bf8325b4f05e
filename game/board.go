package game

import "fmt"

type Board struct {
	bounds Bounds
	cells  []Cell

	numMines    int
	numRevealed int
	numFlags    int

	generated bool

	// scratch buffer for neighbor lookups
	neighborBuf []Coord
}

// NewBoard allocates a width × height × depth grid of hidden, mine-free cells
func NewBoard(width, height, depth int) (*Board, error) {
	bounds := Bounds{Width: width, Height: height, Depth: depth}
	if !bounds.valid() {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, depth)
	}

	board := &Board{
		bounds:      bounds,
		cells:       make([]Cell, bounds.Volume()),
		neighborBuf: make([]Coord, 0, maxNeighbors),
	}
	for idx := range board.cells {
		board.cells[idx].coord = bounds.coordAt(idx)
	}
	return board, nil
}

func (board *Board) Bounds() Bounds {
	return board.bounds
}

func (board *Board) Width() int {
	return board.bounds.Width
}

func (board *Board) Height() int {
	return board.bounds.Height
}

func (board *Board) Depth() int {
	return board.bounds.Depth
}

func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumRevealed() int {
	return board.numRevealed
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// IsGenerated reports whether a mine layout has been applied to the board
func (board *Board) IsGenerated() bool {
	return board.generated
}

// CellAt returns the cell at c, or ErrCoordinateOutOfBounds
func (board *Board) CellAt(c Coord) (*Cell, error) {
	if !board.bounds.Contains(c) {
		return nil, fmt.Errorf("%w: %v", ErrCoordinateOutOfBounds, c)
	}
	return &board.cells[board.bounds.index(c)], nil
}

// cellAt skips the bounds check
func (board *Board) cellAt(c Coord) *Cell {
	return &board.cells[board.bounds.index(c)]
}

// Cells returns every cell of the board, ordered by flat index
// (x fastest, then y, then z).
func (board *Board) Cells() []*Cell {
	out := make([]*Cell, len(board.cells))
	for idx := range board.cells {
		out[idx] = &board.cells[idx]
	}
	return out
}

// HiddenCells returns the cells still Hidden (not flagged, not revealed)
func (board *Board) HiddenCells() []*Cell {
	out := make([]*Cell, 0)
	for idx := range board.cells {
		if board.cells[idx].IsHidden() {
			out = append(out, &board.cells[idx])
		}
	}
	return out
}

// IsCleared reports whether every non-mine cell has been revealed
func (board *Board) IsCleared() bool {
	return board.numRevealed == len(board.cells)-board.numMines
}

func (board *Board) neighbors(c Coord) []Coord {
	board.neighborBuf = AppendNeighbors(board.neighborBuf[:0], c, board.bounds)
	return board.neighborBuf
}

func (board *Board) setMine(c Coord) {
	cell := board.cellAt(c)
	if cell.isMine {
		return
	}
	cell.isMine = true
	board.numMines++
}

// computeAdjacency recounts the mine neighbors of every cell
func (board *Board) computeAdjacency() {
	for idx := range board.cells {
		board.cells[idx].numMines = 0
	}
	for idx := range board.cells {
		if !board.cells[idx].isMine {
			continue
		}
		for _, neighbor := range board.neighbors(board.cells[idx].coord) {
			board.cellAt(neighbor).numMines++
		}
	}
}
