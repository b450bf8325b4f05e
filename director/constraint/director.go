package constraint

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/they4kman/voxsweep/director/random"
	"github.com/they4kman/voxsweep/game"
	"github.com/they4kman/voxsweep/util/collections"
)

// Number of rounds of subset splitting performed per Act
const simplifyRounds = 4

// Director plays by deduction: every revealed number is an observation that
// some count of mines hides among its unknown neighbors. Certain moves are
// made first, then the least risky guess, then a random one.
type Director struct {
	session *game.Session
	rand    *rand.Rand
	random  random.Director

	views map[game.Coord]game.CellView

	observations       []*Observation
	observationsByCell map[game.Coord]collections.Set[*Observation]
}

type Observation struct {
	origin   *game.Coord
	numMines int
	cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range sortedCoords(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%12s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.rand = rand.New(rand.NewSource(session.Seed()))
	director.random.Init(session)
}

func (director *Director) Act() []game.CellAction {
	if director.session == nil || director.session.Status().IsTerminal() {
		return nil
	}

	director.observe()
	for i := 0; i < simplifyRounds; i++ {
		if !director.simplifyObservations() {
			break
		}
	}

	actors := []func() []game.CellAction{
		director.actDeliberate,
		director.actLowestProbability,
		director.random.Act,
	}
	for _, actor := range actors {
		if actions := actor(); len(actions) > 0 {
			return actions
		}
	}
	return nil
}

func (director *Director) End() {
	director.random.End()
	director.session = nil
	director.observations = nil
	director.observationsByCell = nil
}

// observe rebuilds the observations from every revealed cell on the board
func (director *Director) observe() {
	director.observations = nil
	director.observationsByCell = make(map[game.Coord]collections.Set[*Observation])
	director.views = make(map[game.Coord]game.CellView)

	views := director.session.Cells()
	for _, view := range views {
		director.views[view.Coord] = view
	}

	bounds := director.session.Bounds()
	for _, view := range views {
		if view.State != game.Revealed {
			continue
		}

		origin := view.Coord
		observation := Observation{
			origin:   &origin,
			numMines: int(view.NumMines),
			cells:    make(collections.Set[game.Coord]),
		}

		for _, neighbor := range game.Neighbors(origin, bounds) {
			switch director.views[neighbor].State {
			case game.Flagged:
				observation.numMines--
			case game.Hidden:
				observation.cells.Add(neighbor)
			}
		}

		director.addObservation(&observation)
	}
}

// simplifyObservations splits observations contained in one another, and
// reports whether any new observation was found.
func (director *Director) simplifyObservations() bool {
	found := false

	// Only iterate the observations present at the start of the round
	observations := director.observations
	for _, observation := range observations {
		visited := make(collections.Set[*Observation])

		for _, cell := range sortedCoords(observation.cells) {
			for intersectingObs := range director.observationsByCell[cell] {
				if intersectingObs == observation || visited.Contains(intersectingObs) {
					continue
				}
				visited.Add(intersectingObs)

				sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)
				leftOnlyCells := intersectingObs.cells.Difference(observation.cells)

				if isSubset {
					splitObs := Observation{
						numMines: intersectingObs.numMines - observation.numMines,
						cells:    leftOnlyCells,
					}
					found = director.addObservation(&splitObs) || found
					continue
				}

				// At most this many of intersectingObs's mines can be shared
				maxSharedMines := observation.numMines
				if sharedCells.Len() < maxSharedMines {
					maxSharedMines = sharedCells.Len()
				}

				occludedMines := intersectingObs.numMines - maxSharedMines
				if occludedMines > 0 && occludedMines == leftOnlyCells.Len() {
					occludedObs := Observation{
						numMines: occludedMines,
						cells:    leftOnlyCells,
					}
					found = director.addObservation(&occludedObs) || found
				}
			}
		}
	}
	return found
}

// addObservation records observation, unless it is vacuous, inconsistent or
// a duplicate. It reports whether the observation was added.
func (director *Director) addObservation(observation *Observation) bool {
	if len(observation.cells) == 0 {
		return false
	}
	if observation.numMines < 0 || observation.numMines > len(observation.cells) {
		return false
	}

	for cell := range observation.cells {
		for otherObs := range director.observationsByCell[cell] {
			if otherObs.cells.Equal(observation.cells) {
				return false
			}
		}
	}

	for cell := range observation.cells {
		cellObservations, exists := director.observationsByCell[cell]
		if !exists {
			cellObservations = make(collections.Set[*Observation])
			director.observationsByCell[cell] = cellObservations
		}
		cellObservations.Add(observation)
	}

	director.observations = append(director.observations, observation)
	return true
}

func (director *Director) actDeliberate() []game.CellAction {
	actions := make([]game.CellAction, 0)
	acted := make(collections.Set[game.Coord])

	for _, observation := range director.observations {
		var action func(game.Coord) game.CellAction
		switch observation.numMines {
		case len(observation.cells):
			action = game.RightClickAt
		case 0:
			action = game.ClickAt
		default:
			continue
		}

		for _, cell := range sortedCoords(observation.cells) {
			if acted.Contains(cell) {
				continue
			}
			acted.Add(cell)
			actions = append(actions, action(cell))
		}
	}
	return actions
}

func (director *Director) actLowestProbability() []game.CellAction {
	cellProbabilities := make(map[game.Coord]float32)
	for _, observation := range director.observations {
		probability := observation.MineProbability()

		for cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return nil
	}

	lowestProbability := float32(1)
	lowestProbabilityCells := make([]game.Coord, 0)
	for _, cell := range sortedCoords(keys(cellProbabilities)) {
		probability := cellProbabilities[cell]
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = append(lowestProbabilityCells[:0], cell)
		case probability == lowestProbability:
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	if len(lowestProbabilityCells) == 0 || lowestProbability >= director.unconstrainedProbability() {
		return nil
	}

	cell := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]
	return []game.CellAction{game.ClickAt(cell)}
}

// unconstrainedProbability estimates the chance of a mine under a hidden
// cell no observation covers. Returns 1 when there is no such cell.
func (director *Director) unconstrainedProbability() float32 {
	counts := director.session.Counts()
	numHidden := counts.Total - counts.Revealed - counts.Flagged

	numUnconstrained := numHidden - len(director.observationsByCell)
	if numUnconstrained <= 0 {
		return 1
	}

	remainingMines := counts.Mines - counts.Flagged
	if remainingMines < 0 {
		remainingMines = 0
	}
	return float32(remainingMines) / float32(numHidden)
}

func keys(probabilities map[game.Coord]float32) collections.Set[game.Coord] {
	set := make(collections.Set[game.Coord], len(probabilities))
	for cell := range probabilities {
		set.Add(cell)
	}
	return set
}

// sortedCoords orders a set the way the board stores its cells, so actions
// come out deterministically
func sortedCoords(set collections.Set[game.Coord]) []game.Coord {
	out := make([]game.Coord, 0, len(set))
	for cell := range set {
		out = append(out, cell)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
