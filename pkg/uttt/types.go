package uttt

// Type defines for the position
type TurnType bool
type GameState uint8

// Enum for the turns
const (
	NoughtTurn TurnType = false
	CrossTurn  TurnType = true
)

// Enum for the game state, exactly one holds at any time
const (
	CrossesTurn GameState = iota
	NoughtsTurn
	CrossesWin
	NoughtsWin
	Tie
)

const (
	// Grid index meaning the next move may be made on any sub-grid
	GridAny int = -1

	gridMask uint = 0b111111111
)

// Position of a single cell: Grid is the sub-grid index, Cell the index
// within that sub-grid, both row-major 0..8
type Position struct {
	Grid int
	Cell int
}

// Index of the position on the 81-cell board
func (p Position) Index() int {
	return p.Grid*9 + p.Cell
}

// Check if both coordinates are within 0..8
func (p Position) Valid() bool {
	return p.Grid >= 0 && p.Grid < 9 && p.Cell >= 0 && p.Cell < 9
}

func positionFromIndex(i int) Position {
	return Position{Grid: i / 9, Cell: i % 9}
}

// Get the other side
func (t TurnType) Opponent() TurnType {
	return !t
}

func (t TurnType) String() string {
	if t == CrossTurn {
		return "x"
	}
	return "o"
}

func (t TurnType) mark() byte {
	if t == CrossTurn {
		return 'X'
	}
	return 'O'
}

// Side to move, ok is false for terminal states
func (s GameState) Turn() (turn TurnType, ok bool) {
	switch s {
	case CrossesTurn:
		return CrossTurn, true
	case NoughtsTurn:
		return NoughtTurn, true
	}
	return CrossTurn, false
}

// Check if the game has ended (win or tie)
func (s GameState) IsTerminal() bool {
	return s == CrossesWin || s == NoughtsWin || s == Tie
}

func (s GameState) String() string {
	switch s {
	case CrossesTurn:
		return "Crosses Turn (X)"
	case NoughtsTurn:
		return "Noughts Turn (O)"
	case CrossesWin:
		return "Crosses Win (XXX)"
	case NoughtsWin:
		return "Noughts Win (OOO)"
	case Tie:
		return "Tie (XO)"
	}
	return "Unknown"
}

func turnState(t TurnType) GameState {
	if t == CrossTurn {
		return CrossesTurn
	}
	return NoughtsTurn
}
