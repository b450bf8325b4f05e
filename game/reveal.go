package game

import "fmt"

type OutcomeKind int

const (
	// One or more cells were revealed; see RevealOutcome.Revealed
	OutcomeRevealed OutcomeKind = iota
	// A mine was revealed
	OutcomeExploded
	// The target was flagged, or otherwise not eligible
	OutcomeIgnored
	OutcomeAlreadyRevealed
)

func (kind OutcomeKind) String() string {
	switch kind {
	case OutcomeRevealed:
		return "revealed"
	case OutcomeExploded:
		return "exploded"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeAlreadyRevealed:
		return "already revealed"
	}
	return "unknown"
}

// RevealOutcome is the batch of changes produced by a single reveal, for
// hosts to animate in one go.
type RevealOutcome struct {
	Kind OutcomeKind

	// Newly revealed cells, in the order they were uncovered
	Revealed []Coord

	// The exploded cell, when Kind is OutcomeExploded
	Coord Coord
}

// ToggleFlag flags a hidden cell or unflags a flagged one
func (board *Board) ToggleFlag(c Coord) error {
	cell, err := board.CellAt(c)
	if err != nil {
		return err
	}

	switch cell.state {
	case Hidden:
		cell.state = Flagged
		board.numFlags++
	case Flagged:
		cell.state = Hidden
		board.numFlags--
	default:
		return fmt.Errorf("%w: %v is %v", ErrCellNotHidable, c, cell.state)
	}
	return nil
}

// Reveal uncovers the cell at c. Revealing a mine explodes it; revealing a
// cell with no neighboring mines cascades through every connected
// zero-count cell and its border. Flagged cells are never revealed, not even
// by a cascade.
func (board *Board) Reveal(c Coord) (RevealOutcome, error) {
	cell, err := board.CellAt(c)
	if err != nil {
		return RevealOutcome{}, err
	}

	switch cell.state {
	case Revealed, Exploded:
		return RevealOutcome{Kind: OutcomeAlreadyRevealed, Coord: c}, nil
	case Flagged:
		return RevealOutcome{Kind: OutcomeIgnored, Coord: c}, nil
	}

	if cell.isMine {
		cell.state = Exploded
		return RevealOutcome{Kind: OutcomeExploded, Coord: c}, nil
	}

	outcome := RevealOutcome{Kind: OutcomeRevealed, Coord: c}
	board.cascade(c, &outcome.Revealed)
	return outcome, nil
}

// cascade reveals start, then floods through zero-count cells. start must be
// a hidden non-mine cell.
func (board *Board) cascade(start Coord, revealed *[]Coord) {
	flood(
		start,
		func(c Coord) bool {
			cell := board.cellAt(c)
			if cell.state != Hidden || cell.isMine {
				return false
			}

			cell.state = Revealed
			board.numRevealed++
			*revealed = append(*revealed, c)

			return cell.numMines == 0
		},
		board.neighbors,
	)
}

// Chord reveals every hidden neighbor of the revealed cell at c, provided
// the number of flagged neighbors matches its mine count. Any other target
// is ignored. Wrong flags make the chord explode a mine.
func (board *Board) Chord(c Coord) (RevealOutcome, error) {
	cell, err := board.CellAt(c)
	if err != nil {
		return RevealOutcome{}, err
	}

	ignored := RevealOutcome{Kind: OutcomeIgnored, Coord: c}
	if cell.state != Revealed {
		return ignored, nil
	}

	neighbors := Neighbors(c, board.bounds)

	numFlagged := 0
	numHidden := 0
	for _, neighbor := range neighbors {
		switch board.cellAt(neighbor).state {
		case Flagged:
			numFlagged++
		case Hidden:
			numHidden++
		}
	}
	if numFlagged != int(cell.numMines) || numHidden == 0 {
		return ignored, nil
	}

	outcome := RevealOutcome{Kind: OutcomeRevealed, Coord: c}
	for _, neighbor := range neighbors {
		neighborCell := board.cellAt(neighbor)
		if neighborCell.state != Hidden {
			continue
		}
		if neighborCell.isMine {
			neighborCell.state = Exploded
			outcome.Kind = OutcomeExploded
			outcome.Coord = neighbor
			return outcome, nil
		}
		board.cascade(neighbor, &outcome.Revealed)
	}
	return outcome, nil
}
