package game

type Action int

const (
	Click Action = iota
	RightClick
	MiddleClick
)

func (action Action) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	}
	return "unknown"
}

// CellAction is a single move against a cell, as produced by a Director or
// translated from host input.
type CellAction struct {
	Coord  Coord
	Action Action
}

func (action CellAction) String() string {
	return action.Action.String() + " " + action.Coord.String()
}

func ClickAt(c Coord) CellAction {
	return CellAction{Coord: c, Action: Click}
}

func RightClickAt(c Coord) CellAction {
	return CellAction{Coord: c, Action: RightClick}
}

func MiddleClickAt(c Coord) CellAction {
	return CellAction{Coord: c, Action: MiddleClick}
}

type Director interface {
	/**
	 * Initialize the director against a session
	 */
	Init(*Session)

	/**
	 * Decide the next batch of actions; empty when out of ideas
	 */
	Act() []CellAction

	/**
	 * Stop acting
	 */
	End()
}
