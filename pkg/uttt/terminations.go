package uttt

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Check if given 9-bit pattern (row-major 3x3 grid) contains a winning line
func CheckWin(pattern uint) bool {
	for _, line := range _winningBitboardPatterns {
		if pattern&line == line {
			return true
		}
	}
	return false
}

// Compute the game state after a move of given side was made, from the
// meta board and the legal moves of the following turn.
// A win on the meta board takes precedence over the tie and turn results
func NextState(meta MetaBoard, legal []Position, mover TurnType) GameState {
	state := turnState(mover.Opponent())
	if len(legal) == 0 {
		state = Tie
	}

	if CheckWin(meta.Pattern(CrossTurn)) {
		state = CrossesWin
	} else if CheckWin(meta.Pattern(NoughtTurn)) {
		state = NoughtsWin
	}
	return state
}

// Check if given side has completed a line in the sub-grid
func gridWon(board *Board, t TurnType, grid int) bool {
	bb := board.Side(t)
	return CheckWin(bb.Grid(grid))
}
