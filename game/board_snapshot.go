package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a YAML-friendly record of a board's mine layout and cell
// states. Each layer holds Height rows of Width cells, one z-slice per layer:
//
//	* exploded mine   F flagged mine   O hidden mine
//	f flagged cell    . revealed cell  # hidden cell
type BoardSnapshot struct {
	Seed   int64    `yaml:"seed"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Depth  int      `yaml:"depth"`
	Layers []string `yaml:"layers"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Snapshot records the session's board as it currently stands
func (session *Session) Snapshot() *BoardSnapshot {
	return session.board.snapshot(session.seed)
}

func (board *Board) snapshot(seed int64) *BoardSnapshot {
	bounds := board.bounds
	snapshot := &BoardSnapshot{
		Seed:   seed,
		Width:  bounds.Width,
		Height: bounds.Height,
		Depth:  bounds.Depth,
		Layers: make([]string, bounds.Depth),
	}

	layer := strings.Builder{}
	for z := 0; z < bounds.Depth; z++ {
		layer.Reset()
		for y := 0; y < bounds.Height; y++ {
			if y > 0 {
				layer.WriteByte('\n')
			}
			for x := 0; x < bounds.Width; x++ {
				layer.WriteByte(board.cellAt(Coord{x, y, z}).serialize())
			}
		}
		snapshot.Layers[z] = layer.String()
	}
	return snapshot
}

// createBoard rebuilds the board recorded in the snapshot. When fresh, only
// the mine layout is kept and every cell starts hidden.
func (snapshot *BoardSnapshot) createBoard(fresh bool) (*Board, error) {
	board, err := NewBoard(snapshot.Width, snapshot.Height, snapshot.Depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if len(snapshot.Layers) != snapshot.Depth {
		return nil, fmt.Errorf("%w: %d layers, depth %d", ErrInvalidSnapshot, len(snapshot.Layers), snapshot.Depth)
	}

	for z, layer := range snapshot.Layers {
		rows := strings.Split(strings.TrimRight(layer, "\n"), "\n")
		if len(rows) != snapshot.Height {
			return nil, fmt.Errorf("%w: layer %d has %d rows, height %d", ErrInvalidSnapshot, z, len(rows), snapshot.Height)
		}

		for y, row := range rows {
			if len(row) != snapshot.Width {
				return nil, fmt.Errorf("%w: row %d of layer %d has %d cells, width %d", ErrInvalidSnapshot, y, z, len(row), snapshot.Width)
			}

			for x := 0; x < len(row); x++ {
				cell := board.cellAt(Coord{x, y, z})
				if !cell.deserialize(row[x], fresh) {
					return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidSnapshot, row[x], cell.coord)
				}

				if cell.isMine {
					board.numMines++
				}
				switch cell.state {
				case Revealed:
					board.numRevealed++
				case Flagged:
					board.numFlags++
				}
			}
		}
	}

	if board.numMines >= board.NumCells() {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrInvalidSnapshot, board.numMines, board.NumCells())
	}

	board.generated = true
	board.computeAdjacency()
	return board, nil
}

// NewSessionFromSnapshot starts a session on the snapshot's mine layout.
// Dimensions, mine count and seed come from the snapshot; the rest of config
// is kept. Unless fresh, cell states are restored and the status follows
// from them.
func NewSessionFromSnapshot(snapshot *BoardSnapshot, config GameConfig, fresh bool) (*Session, error) {
	board, err := snapshot.createBoard(fresh)
	if err != nil {
		return nil, err
	}

	config.Width, config.Height, config.Depth = snapshot.Width, snapshot.Height, snapshot.Depth
	config.NumMines = board.numMines
	config = config.WithSeed(snapshot.Seed)

	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}
	session.board = board

	switch {
	case board.hasExploded():
		session.status = Lost
	case board.numRevealed > 0 && board.IsCleared():
		session.status = Won
	case board.numRevealed > 0:
		session.status = InProgress
	}
	return session, nil
}

func (board *Board) hasExploded() bool {
	for idx := range board.cells {
		if board.cells[idx].state == Exploded {
			return true
		}
	}
	return false
}
