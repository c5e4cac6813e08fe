package uttt

import (
	"strings"

	"github.com/muesli/termenv"
)

const (
	_gridRowSeparator = "------+-------+------"

	_crossColor  = "9"  // bright red
	_noughtColor = "12" // bright blue
)

// Plain text representation of the game state and the 9x9 board
func (e *Engine) String() string {
	return e.Render(termenv.Ascii)
}

// Render the game state and the board, coloring the marks with given
// termenv profile. termenv.Ascii gives plain text.
// Cells of won sub-grids are drawn in bold
func (e *Engine) Render(profile termenv.Profile) string {
	builder := strings.Builder{}
	builder.WriteString("Game State: ")
	builder.WriteString(e.state.String())
	builder.WriteString("\n\n")

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			p := Position{
				Grid: (row/3)*3 + col/3,
				Cell: (row%3)*3 + col%3,
			}
			builder.WriteString(e.renderCell(profile, p))

			// Add space between 3x3 sub-grids
			if col%3 == 2 && col != 8 {
				builder.WriteString(" | ")
			} else if col != 8 {
				builder.WriteByte(' ')
			}
		}
		builder.WriteByte('\n')

		if row%3 == 2 && row != 8 {
			builder.WriteString(_gridRowSeparator)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

func (e *Engine) renderCell(profile termenv.Profile, p Position) string {
	owner, ok := e.board.Owner(p)
	if !ok {
		return profile.String(".").Faint().String()
	}

	color := _noughtColor
	if owner == CrossTurn {
		color = _crossColor
	}

	style := profile.String(string(owner.mark())).Foreground(profile.Color(color))
	if winner, won := e.meta.WonBy(p.Grid); won && winner == owner {
		style = style.Bold()
	}
	return style.String()
}
