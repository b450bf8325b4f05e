package game

import (
	"fmt"
)

type Cell struct {
	coord    Coord
	numMines uint8

	isMine bool
	state  CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell%v", cell.coord)
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine:
		switch cell.state {
		case Exploded:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.state == Flagged:
		return 'f'
	case cell.state == Revealed:
		return '.'
	default:
		return '#'
	}
}

// deserialize restores the mine bit of the cell from c and, unless fresh,
// its state. It returns false if c is not a known cell symbol.
func (cell *Cell) deserialize(c byte, fresh bool) bool {
	state := Hidden

	switch c {
	case '*', 'F', 'O':
		cell.isMine = true

		switch c {
		case '*':
			state = Exploded
		case 'F':
			state = Flagged
		}
	case 'f':
		state = Flagged
	case '.':
		state = Revealed
	case '#':
	default:
		return false
	}

	if !fresh {
		cell.state = state
	}
	return true
}

func (cell *Cell) Coord() Coord {
	return cell.coord
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsRevealed() bool {
	return cell.state == Revealed || cell.state == Exploded
}

func (cell *Cell) IsFlagged() bool {
	return cell.state == Flagged
}

func (cell *Cell) IsHidden() bool {
	return cell.state == Hidden
}

// NumMines is the number of mines among the cell's neighbors
func (cell *Cell) NumMines() uint8 {
	return cell.numMines
}
