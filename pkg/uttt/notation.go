package uttt

import (
	"fmt"
	"strconv"
	"strings"
)

// Get string representation of the move, will contain
// a/b/c 1/2/3 as coordinates, for example grid = 7,
// cell = 2 -> <grid part><cell part> -> B1c3
//
//	   A   B   C
//	   0 | 1 | 2   3
//	  -----------
//	   3 | 4 | 5   2
//	  -----------
//	   6 | 7 | 8   1
func (p Position) String() string {
	if !p.Valid() {
		return "(none)"
	}

	builder := strings.Builder{}
	builder.Grow(4)
	builder.WriteByte('A' + byte(p.Grid%3))
	builder.WriteByte('3' - byte(p.Grid/3))
	builder.WriteByte('a' + byte(p.Cell%3))
	builder.WriteByte('3' - byte(p.Cell/3))
	return builder.String()
}

// Parse a move, either in the letter notation (see Position.String)
// or as two indexes "grid,cell" / "grid:cell"
func ParsePosition(str string) (Position, error) {
	str = strings.TrimSpace(str)
	if i := strings.IndexAny(str, ",:"); i != -1 {
		return parseIndexes(str[:i], str[i+1:])
	}

	if len(str) != 4 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadNotation, str)
	}

	// Helper function to make sure the coordinates are within the range
	_cmp := func(i int, letter byte) bool {
		return (str[i] >= letter && str[i] <= letter+2) &&
			(str[i+1] >= '1' && str[i+1] <= '3')
	}

	if !_cmp(0, 'A') || !_cmp(2, 'a') {
		return Position{}, fmt.Errorf("%w: %q", ErrBadNotation, str)
	}

	return Position{
		Grid: int(str[0]-'A') + int('3'-str[1])*3,
		Cell: int(str[2]-'a') + int('3'-str[3])*3,
	}, nil
}

func parseIndexes(grid, cell string) (Position, error) {
	g, err := strconv.Atoi(strings.TrimSpace(grid))
	if err != nil {
		return Position{}, fmt.Errorf("%w: grid %q", ErrBadNotation, grid)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return Position{}, fmt.Errorf("%w: cell %q", ErrBadNotation, cell)
	}

	p := Position{Grid: g, Cell: c}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: grid=%d cell=%d", ErrOutOfRange, g, c)
	}
	return p, nil
}

// Join the moves with spaces, "empty" if there are none
func FormatMoves(moves []Position) string {
	if len(moves) == 0 {
		return "empty"
	}

	strMoves := make([]string, len(moves))
	for i, m := range moves {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}

// Parse the side, either 'x' or 'o' (case insensitive)
func ParseTurn(str string) (TurnType, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "x":
		return CrossTurn, nil
	case "o":
		return NoughtTurn, nil
	}
	return CrossTurn, fmt.Errorf("invalid side %q, expected x or o", str)
}
