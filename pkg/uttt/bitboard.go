package uttt

import "math/bits"

// 81-bit set, one bit per cell, bit index = grid*9 + cell.
// The first word holds cells 0..63, the second cells 64..80
type Bitboard [2]uint64

// Check if the bit at given index is set
func (b Bitboard) Has(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set the bit at given index
func (b *Bitboard) Set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1]}
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1]}
}

func (b Bitboard) IsEmpty() bool {
	return b[0] == 0 && b[1] == 0
}

// Number of set bits
func (b Bitboard) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1])
}

// Get the 9-bit pattern of given sub-grid, bit k is the cell k
func (b Bitboard) Grid(grid int) uint {
	shift := uint(grid) * 9
	if shift >= 64 {
		return uint(b[1]>>(shift-64)) & gridMask
	}
	// b[1] << 64 is 0, so grid 0 needs no special case
	return uint(b[0]>>shift|b[1]<<(64-shift)) & gridMask
}

// Two disjoint bitboards, one for each side
type Board struct {
	crosses Bitboard
	noughts Bitboard
}

// Get the bitboard of given side
func (b *Board) Side(t TurnType) Bitboard {
	if t == CrossTurn {
		return b.crosses
	}
	return b.noughts
}

// Union of both sides
func (b *Board) Occupied() Bitboard {
	return b.crosses.Or(b.noughts)
}

func (b *Board) IsOccupied(p Position) bool {
	return b.Occupied().Has(p.Index())
}

// Get the owner of the cell, ok is false if the cell is empty
func (b *Board) Owner(p Position) (owner TurnType, ok bool) {
	i := p.Index()
	switch {
	case b.crosses.Has(i):
		return CrossTurn, true
	case b.noughts.Has(i):
		return NoughtTurn, true
	}
	return CrossTurn, false
}

// Check if every cell of the sub-grid is occupied
func (b *Board) GridFull(grid int) bool {
	return b.Occupied().Grid(grid) == gridMask
}

// Put a mark of given side, doesn't check if the cell is empty
func (b *Board) set(p Position, t TurnType) {
	if t == CrossTurn {
		b.crosses.Set(p.Index())
	} else {
		b.noughts.Set(p.Index())
	}
}

// 18-bit set of won sub-grids: bits 0..8 for crosses, 9..17 for noughts
type MetaBoard uint32

const _metaNoughtsShift = 9

func metaBit(t TurnType, grid int) MetaBoard {
	if t == CrossTurn {
		return 1 << uint(grid)
	}
	return 1 << uint(grid+_metaNoughtsShift)
}

// Mark the sub-grid as won by given side, no-op if it is already won
func (m *MetaBoard) SetGridWon(t TurnType, grid int) {
	if m.GridWon(grid) {
		return
	}
	*m |= metaBit(t, grid)
}

// Check if the sub-grid is won by either side
func (m MetaBoard) GridWon(grid int) bool {
	return m&(metaBit(CrossTurn, grid)|metaBit(NoughtTurn, grid)) != 0
}

// Get the side that won the sub-grid, ok is false if nobody did
func (m MetaBoard) WonBy(grid int) (winner TurnType, ok bool) {
	switch {
	case m&metaBit(CrossTurn, grid) != 0:
		return CrossTurn, true
	case m&metaBit(NoughtTurn, grid) != 0:
		return NoughtTurn, true
	}
	return CrossTurn, false
}

// Get the 9-bit pattern of sub-grids won by given side
func (m MetaBoard) Pattern(t TurnType) uint {
	if t == CrossTurn {
		return uint(m) & gridMask
	}
	return uint(m>>_metaNoughtsShift) & gridMask
}
