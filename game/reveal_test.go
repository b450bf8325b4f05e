package game

import (
	"errors"
	"testing"
)

func TestRevealCascade(t *testing.T) {
	board := newTestBoard(t, 4, 4, 4, Coord{3, 3, 3})

	outcome, err := board.Reveal(Coord{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if outcome.Kind != OutcomeRevealed {
		t.Fatalf("Kind = %v, want revealed", outcome.Kind)
	}
	if len(outcome.Revealed) != 63 {
		t.Errorf("revealed %d cells, want 63", len(outcome.Revealed))
	}
	if outcome.Revealed[0] != (Coord{0, 0, 0}) {
		t.Errorf("first revealed = %v, want the clicked cell", outcome.Revealed[0])
	}

	seen := make(map[Coord]bool)
	for _, c := range outcome.Revealed {
		if seen[c] {
			t.Fatalf("%v revealed twice", c)
		}
		seen[c] = true
	}

	if board.NumRevealed() != 63 || !board.IsCleared() {
		t.Errorf("NumRevealed() = %d, IsCleared() = %v", board.NumRevealed(), board.IsCleared())
	}
	if mine := board.cellAt(Coord{3, 3, 3}); mine.State() != Hidden {
		t.Errorf("cascade touched the mine: %v", mine.State())
	}
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	board := newTestBoard(t, 4, 4, 4, Coord{3, 3, 3})

	outcome, err := board.Reveal(Coord{2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(outcome.Revealed) != 1 || outcome.Revealed[0] != (Coord{2, 2, 2}) {
		t.Errorf("Revealed = %v, want just (2, 2, 2)", outcome.Revealed)
	}
	if board.NumRevealed() != 1 {
		t.Errorf("NumRevealed() = %d, want 1", board.NumRevealed())
	}
}

func TestCascadeSkipsFlaggedCells(t *testing.T) {
	board := newTestBoard(t, 4, 4, 4, Coord{3, 3, 3})
	flagged := Coord{0, 3, 0}

	if err := board.ToggleFlag(flagged); err != nil {
		t.Fatal(err)
	}

	outcome, err := board.Reveal(Coord{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if len(outcome.Revealed) != 62 {
		t.Errorf("revealed %d cells, want 62", len(outcome.Revealed))
	}
	for _, c := range outcome.Revealed {
		if c == flagged {
			t.Fatalf("cascade revealed the flagged cell %v", c)
		}
	}
	if got := board.cellAt(flagged).State(); got != Flagged {
		t.Errorf("flagged cell state = %v, want flagged", got)
	}
	if board.IsCleared() {
		t.Error("board cleared with a flagged safe cell still hidden")
	}
}

func TestRevealStates(t *testing.T) {
	board := newTestBoard(t, 3, 1, 1, Coord{2, 0, 0})

	if err := board.ToggleFlag(Coord{0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	outcome, err := board.Reveal(Coord{0, 0, 0})
	if err != nil || outcome.Kind != OutcomeIgnored {
		t.Errorf("Reveal(flagged) = %v, %v; want ignored", outcome.Kind, err)
	}
	if board.NumRevealed() != 0 {
		t.Errorf("revealing a flagged cell changed NumRevealed() to %d", board.NumRevealed())
	}

	outcome, err = board.Reveal(Coord{1, 0, 0})
	if err != nil || outcome.Kind != OutcomeRevealed {
		t.Fatalf("Reveal(1) = %v, %v; want revealed", outcome.Kind, err)
	}

	outcome, err = board.Reveal(Coord{1, 0, 0})
	if err != nil || outcome.Kind != OutcomeAlreadyRevealed {
		t.Errorf("second Reveal(1) = %v, %v; want already revealed", outcome.Kind, err)
	}
	if board.NumRevealed() != 1 {
		t.Errorf("re-reveal changed NumRevealed() to %d", board.NumRevealed())
	}

	outcome, err = board.Reveal(Coord{2, 0, 0})
	if err != nil || outcome.Kind != OutcomeExploded || outcome.Coord != (Coord{2, 0, 0}) {
		t.Errorf("Reveal(mine) = %+v, %v; want exploded at (2, 0, 0)", outcome, err)
	}
	if got := board.cellAt(Coord{2, 0, 0}).State(); got != Exploded {
		t.Errorf("mine state = %v, want exploded", got)
	}

	outcome, err = board.Reveal(Coord{2, 0, 0})
	if err != nil || outcome.Kind != OutcomeAlreadyRevealed {
		t.Errorf("Reveal(exploded) = %v, %v; want already revealed", outcome.Kind, err)
	}

	if _, err := board.Reveal(Coord{3, 0, 0}); !errors.Is(err, ErrCoordinateOutOfBounds) {
		t.Errorf("Reveal(out of bounds) error = %v", err)
	}
}

func TestToggleFlag(t *testing.T) {
	board := newTestBoard(t, 3, 1, 1, Coord{2, 0, 0})
	c := Coord{0, 0, 0}

	if err := board.ToggleFlag(c); err != nil {
		t.Fatal(err)
	}
	if board.cellAt(c).State() != Flagged || board.NumFlags() != 1 {
		t.Errorf("after flag: state %v, NumFlags() %d", board.cellAt(c).State(), board.NumFlags())
	}

	if err := board.ToggleFlag(c); err != nil {
		t.Fatal(err)
	}
	if board.cellAt(c).State() != Hidden || board.NumFlags() != 0 {
		t.Errorf("after unflag: state %v, NumFlags() %d", board.cellAt(c).State(), board.NumFlags())
	}

	if _, err := board.Reveal(c); err != nil {
		t.Fatal(err)
	}
	if err := board.ToggleFlag(c); !errors.Is(err, ErrCellNotHidable) {
		t.Errorf("ToggleFlag(revealed) error = %v, want ErrCellNotHidable", err)
	}
	if board.cellAt(c).State() != Revealed || board.NumFlags() != 0 {
		t.Errorf("failed toggle changed the cell: %v, NumFlags() %d", board.cellAt(c).State(), board.NumFlags())
	}

	if err := board.ToggleFlag(Coord{0, 1, 0}); !errors.Is(err, ErrCoordinateOutOfBounds) {
		t.Errorf("ToggleFlag(out of bounds) error = %v", err)
	}
}

func TestChord(t *testing.T) {
	tests := []struct {
		name     string
		flag     *Coord
		wantKind OutcomeKind
		wantCell Coord
	}{
		{
			name:     "no flags",
			wantKind: OutcomeIgnored,
		},
		{
			name:     "correct flag",
			flag:     &Coord{2, 0, 0},
			wantKind: OutcomeRevealed,
		},
		{
			name:     "wrong flag",
			flag:     &Coord{0, 0, 0},
			wantKind: OutcomeExploded,
			wantCell: Coord{2, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := newTestBoard(t, 3, 1, 1, Coord{2, 0, 0})
			if _, err := board.Reveal(Coord{1, 0, 0}); err != nil {
				t.Fatal(err)
			}
			if tt.flag != nil {
				if err := board.ToggleFlag(*tt.flag); err != nil {
					t.Fatal(err)
				}
			}

			outcome, err := board.Chord(Coord{1, 0, 0})
			if err != nil {
				t.Fatal(err)
			}
			if outcome.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", outcome.Kind, tt.wantKind)
			}

			switch tt.wantKind {
			case OutcomeRevealed:
				if len(outcome.Revealed) != 1 || outcome.Revealed[0] != (Coord{0, 0, 0}) {
					t.Errorf("Revealed = %v, want [(0, 0, 0)]", outcome.Revealed)
				}
				if !board.IsCleared() {
					t.Error("board not cleared")
				}
			case OutcomeExploded:
				if outcome.Coord != tt.wantCell {
					t.Errorf("exploded at %v, want %v", outcome.Coord, tt.wantCell)
				}
			}
		})
	}
}

func TestChordOnHiddenCellIsIgnored(t *testing.T) {
	board := newTestBoard(t, 3, 3, 3)

	outcome, err := board.Chord(Coord{1, 1, 1})
	if err != nil || outcome.Kind != OutcomeIgnored {
		t.Errorf("Chord(hidden) = %v, %v; want ignored", outcome.Kind, err)
	}
	if board.NumRevealed() != 0 {
		t.Errorf("NumRevealed() = %d, want 0", board.NumRevealed())
	}
}

func TestRevealLargeVolume(t *testing.T) {
	board := newTestBoard(t, 40, 40, 40)

	outcome, err := board.Reveal(Coord{20, 20, 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(outcome.Revealed) != 40*40*40 || !board.IsCleared() {
		t.Errorf("revealed %d of %d cells", len(outcome.Revealed), 40*40*40)
	}
}
