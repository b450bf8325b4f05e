package random

import (
	"math/rand"

	"github.com/they4kman/voxsweep/game"
)

// Director clicks hidden, unflagged cells at random
type Director struct {
	session *game.Session
	rand    *rand.Rand
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.rand = rand.New(rand.NewSource(session.Seed()))
}

func (director *Director) Act() []game.CellAction {
	if director.session == nil || director.session.Status().IsTerminal() {
		return nil
	}

	unrevealedCells := make([]game.Coord, 0)
	for _, view := range director.session.Cells() {
		if view.State == game.Hidden {
			unrevealedCells = append(unrevealedCells, view.Coord)
		}
	}
	if len(unrevealedCells) == 0 {
		return nil
	}

	cell := unrevealedCells[director.rand.Intn(len(unrevealedCells))]
	return []game.CellAction{game.ClickAt(cell)}
}

func (director *Director) End() {
	director.session = nil
}
