package uttt

import (
	"math/bits"
)

// Get the region of the next move: the sub-grid sent to by the cell just
// played, or GridAny if that sub-grid is won or has no empty cells
func nextRegion(board *Board, meta MetaBoard, cell int) int {
	if meta.GridWon(cell) || board.GridFull(cell) {
		return GridAny
	}
	return cell
}

// Generate all legal moves in given region, in board order
// (grid ascending, then cell ascending)
func GenerateMoves(board *Board, meta MetaBoard, region int) []Position {
	if region != GridAny {
		return appendGridMoves(make([]Position, 0, 9), board, meta, region)
	}

	moves := make([]Position, 0, 81-board.Occupied().Count())
	for grid := 0; grid < 9; grid++ {
		moves = appendGridMoves(moves, board, meta, grid)
	}
	return moves
}

func appendGridMoves(moves []Position, board *Board, meta MetaBoard, grid int) []Position {
	if meta.GridWon(grid) {
		return moves
	}

	// The 2 bitboards are mutually exclusive, so xor leaves the empty cells
	free := gridMask ^ board.Occupied().Grid(grid)
	for free != 0 {
		moves = append(moves, Position{Grid: grid, Cell: bits.TrailingZeros(free)})
		free &= free - 1
	}
	return moves
}
