package uttt

import "testing"

func TestBitboardWordBoundary(t *testing.T) {
	var bb Bitboard
	for _, i := range []int{0, 62, 63, 64, 80} {
		bb.Set(i)
	}

	for i := 0; i < 81; i++ {
		want := i == 0 || i == 62 || i == 63 || i == 64 || i == 80
		if bb.Has(i) != want {
			t.Errorf("Has(%d)=%v, want=%v", i, bb.Has(i), want)
		}
	}
	if bb.Count() != 5 {
		t.Errorf("Count=%d, want=5", bb.Count())
	}

	// Sub-grid 7 spans cells 63..71, across both words
	if g := bb.Grid(7); g != 0b11 {
		t.Errorf("Grid(7)=%09b, want=000000011", g)
	}
	if g := bb.Grid(6); g != 0b100000000 {
		t.Errorf("Grid(6)=%09b, want=100000000", g)
	}
	if g := bb.Grid(8); g != 0b100000000 {
		t.Errorf("Grid(8)=%09b, want=100000000", g)
	}
	if g := bb.Grid(0); g != 0b1 {
		t.Errorf("Grid(0)=%09b, want=000000001", g)
	}
}

func TestBitboardGridAllCells(t *testing.T) {
	for grid := 0; grid < 9; grid++ {
		for cell := 0; cell < 9; cell++ {
			var bb Bitboard
			bb.Set(Position{grid, cell}.Index())
			for g := 0; g < 9; g++ {
				want := uint(0)
				if g == grid {
					want = 1 << cell
				}
				if got := bb.Grid(g); got != want {
					t.Fatalf("cell (%d,%d): Grid(%d)=%09b, want=%09b", grid, cell, g, got, want)
				}
			}
		}
	}
}

func TestBoardOwner(t *testing.T) {
	var b Board
	b.set(Position{2, 3}, CrossTurn)
	b.set(Position{8, 8}, NoughtTurn)

	if owner, ok := b.Owner(Position{2, 3}); !ok || owner != CrossTurn {
		t.Errorf("Owner(2,3)=%s ok=%v, want x", owner, ok)
	}
	if owner, ok := b.Owner(Position{8, 8}); !ok || owner != NoughtTurn {
		t.Errorf("Owner(8,8)=%s ok=%v, want o", owner, ok)
	}
	if _, ok := b.Owner(Position{0, 0}); ok {
		t.Error("Owner(0,0) should be empty")
	}
	if !b.IsOccupied(Position{8, 8}) || b.IsOccupied(Position{8, 7}) {
		t.Error("IsOccupied mismatch")
	}
	if b.GridFull(2) {
		t.Error("sub-grid 2 shouldn't be full")
	}
}

func TestMetaBoard(t *testing.T) {
	var m MetaBoard
	m.SetGridWon(NoughtTurn, 4)
	m.SetGridWon(CrossTurn, 4) // already won, must not change
	m.SetGridWon(CrossTurn, 0)

	if winner, ok := m.WonBy(4); !ok || winner != NoughtTurn {
		t.Errorf("WonBy(4)=%s ok=%v, want o", winner, ok)
	}
	if winner, ok := m.WonBy(0); !ok || winner != CrossTurn {
		t.Errorf("WonBy(0)=%s ok=%v, want x", winner, ok)
	}
	if m.GridWon(1) {
		t.Error("sub-grid 1 shouldn't be won")
	}
	if m != MetaBoard(1|1<<13) {
		t.Errorf("meta=%018b, want bits 0 and 13", m)
	}
	if m.Pattern(CrossTurn) != 0b1 || m.Pattern(NoughtTurn) != 0b10000 {
		t.Errorf("patterns x=%09b o=%09b", m.Pattern(CrossTurn), m.Pattern(NoughtTurn))
	}
}
