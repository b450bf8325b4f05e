package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Session is one play-through of a board, from the first click to a win or
// loss. Mines are placed on the first reveal, around the clicked cell.
//
// A Session is not safe for concurrent use; hosts must serialize calls.
type Session struct {
	config GameConfig
	board  *Board
	status Status
	seed   int64

	// Called once when the session reaches Won or Lost
	OnGameEnd func(*Session)

	log logrus.FieldLogger
}

type Counts struct {
	Revealed int
	Flagged  int
	Mines    int
	Total    int
}

// CellView is what a host may know about a cell. Mine information is only
// filled in once the cell is uncovered, or for every cell after a loss.
type CellView struct {
	Coord    Coord
	State    CellState
	NumMines uint8
	IsMine   bool

	// Flagged cell that turned out not to be a mine
	WrongFlag bool
}

func NewSession(config GameConfig) (*Session, error) {
	session := &Session{}
	if err := session.Reset(config); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset discards the current board and starts a fresh round with config.
// An invalid config leaves the session as it was.
func (session *Session) Reset(config GameConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	board, err := NewBoard(config.Width, config.Height, config.Depth)
	if err != nil {
		return err
	}

	session.config = config
	session.board = board
	session.status = NotStarted
	session.seed = config.seed()
	session.OnGameEnd = config.onGameEnd
	session.log = Log.WithFields(logrus.Fields{
		"seed": session.seed,
		"dims": fmt.Sprintf("%dx%dx%d", config.Width, config.Height, config.Depth),
	})

	session.log.WithField("mines", config.NumMines).Debug("new round")
	return nil
}

func (session *Session) Config() GameConfig {
	return session.config
}

func (session *Session) Status() Status {
	return session.status
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) Bounds() Bounds {
	return session.board.bounds
}

// NumMines is the number of mines the round is played with, placed or not
func (session *Session) NumMines() int {
	return session.config.NumMines
}

func (session *Session) Counts() Counts {
	return Counts{
		Revealed: session.board.numRevealed,
		Flagged:  session.board.numFlags,
		Mines:    session.config.NumMines,
		Total:    session.board.NumCells(),
	}
}

func (session *Session) canPlay() bool {
	return !session.status.IsTerminal()
}

// Reveal uncovers the cell at c. The first reveal of the round places the
// mines; if they cannot fit around c the round stays NotStarted.
func (session *Session) Reveal(c Coord) (RevealOutcome, error) {
	if !session.canPlay() {
		return RevealOutcome{}, ErrSessionOver
	}

	cell, err := session.board.CellAt(c)
	if err != nil {
		return RevealOutcome{}, err
	}

	if !session.board.generated {
		if cell.state == Flagged {
			return RevealOutcome{Kind: OutcomeIgnored, Coord: c}, nil
		}
		if err := Generate(session.board, session.config.NumMines, c, session.seed); err != nil {
			return RevealOutcome{}, err
		}
		session.log.WithField("first_click", c).Debug("mines placed")
	}
	outcome, err := session.board.Reveal(c)
	if err != nil {
		return outcome, err
	}
	if session.status == NotStarted && outcome.Kind != OutcomeIgnored {
		session.status = InProgress
	}
	session.afterReveal(outcome)
	return outcome, nil
}

// ToggleFlag flags or unflags the hidden cell at c
func (session *Session) ToggleFlag(c Coord) error {
	if !session.canPlay() {
		return ErrSessionOver
	}
	return session.board.ToggleFlag(c)
}

// Chord reveals the unflagged neighbors of a revealed cell whose flags
// account for all of its mines.
func (session *Session) Chord(c Coord) (RevealOutcome, error) {
	if !session.canPlay() {
		return RevealOutcome{}, ErrSessionOver
	}

	outcome, err := session.board.Chord(c)
	if err != nil {
		return outcome, err
	}
	session.afterReveal(outcome)
	return outcome, nil
}

// Apply performs a single CellAction. Flag toggles report OutcomeIgnored,
// as they uncover nothing.
func (session *Session) Apply(action CellAction) (RevealOutcome, error) {
	switch action.Action {
	case Click:
		return session.Reveal(action.Coord)
	case RightClick:
		if err := session.ToggleFlag(action.Coord); err != nil {
			return RevealOutcome{}, err
		}
		return RevealOutcome{Kind: OutcomeIgnored, Coord: action.Coord}, nil
	case MiddleClick:
		return session.Chord(action.Coord)
	}
	return RevealOutcome{}, fmt.Errorf("unknown action %d", action.Action)
}

func (session *Session) afterReveal(outcome RevealOutcome) {
	switch {
	case outcome.Kind == OutcomeExploded:
		session.lose(outcome.Coord)
	case outcome.Kind == OutcomeRevealed && session.board.IsCleared():
		session.win()
	}
}

func (session *Session) win() {
	session.status = Won
	session.log.WithField("revealed", session.board.numRevealed).Info("round won")
	session.endGame()
}

func (session *Session) lose(c Coord) {
	session.status = Lost
	session.log.WithField("coord", c).Info("round lost")
	session.endGame()
}

func (session *Session) endGame() {
	if session.OnGameEnd != nil {
		session.OnGameEnd(session)
	}
}

// CellView describes the cell at c as a host may show it
func (session *Session) CellView(c Coord) (CellView, error) {
	cell, err := session.board.CellAt(c)
	if err != nil {
		return CellView{}, err
	}
	return session.view(cell), nil
}

// Cells returns a view of every cell, ordered by flat index
func (session *Session) Cells() []CellView {
	views := make([]CellView, len(session.board.cells))
	for idx := range session.board.cells {
		views[idx] = session.view(&session.board.cells[idx])
	}
	return views
}

func (session *Session) view(cell *Cell) CellView {
	view := CellView{
		Coord: cell.coord,
		State: cell.state,
	}

	switch cell.state {
	case Revealed:
		view.NumMines = cell.numMines
	case Exploded:
		view.IsMine = true
	}

	if session.status == Lost {
		view.IsMine = cell.isMine
		view.WrongFlag = cell.state == Flagged && !cell.isMine
	}
	return view
}
