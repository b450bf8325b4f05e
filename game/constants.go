package game

type CellState int
type Status int

const (
	Hidden CellState = iota
	Flagged
	Revealed
	Exploded
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	case Exploded:
		return "exploded"
	}
	return "unknown"
}

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// IsTerminal reports whether no further moves are accepted
func (status Status) IsTerminal() bool {
	return status == Won || status == Lost
}

// Largest possible neighbor count of a cell in the grid
const maxNeighbors = 26

// Largest board, in cells, that NewBoard will allocate
const maxCells = 1 << 24
