package uttt

import (
	"errors"
	"testing"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{0, 0}, "A3a3"},
		{Position{1, 0}, "B3a3"},
		{Position{4, 4}, "B2b2"},
		{Position{6, 8}, "A1c1"},
		{Position{8, 2}, "C1c3"},
		{Position{9, 0}, "(none)"},
		{Position{0, -1}, "(none)"},
	}

	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("(%d,%d).String()=%s, want=%s", tt.pos.Grid, tt.pos.Cell, got, tt.want)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for i := 0; i < 81; i++ {
		p := positionFromIndex(i)
		got, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("ParsePosition(%s): %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePosition(%s)=(%d,%d), want=(%d,%d)", p, got.Grid, got.Cell, p.Grid, p.Cell)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		str  string
		want Position
		err  error
	}{
		{"B3a3", Position{1, 0}, nil},
		{" C1c1 ", Position{8, 8}, nil},
		{"4,0", Position{4, 0}, nil},
		{"4: 7", Position{4, 7}, nil},
		{"9,0", Position{}, ErrOutOfRange},
		{"0,-2", Position{}, ErrOutOfRange},
		{"a,0", Position{}, ErrBadNotation},
		{"D3a3", Position{}, ErrBadNotation},
		{"B4a3", Position{}, ErrBadNotation},
		{"b3A3", Position{}, ErrBadNotation},
		{"B3a", Position{}, ErrBadNotation},
		{"", Position{}, ErrBadNotation},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			got, err := ParsePosition(tt.str)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err=%v, want=%v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got=(%d,%d), want=(%d,%d)", got.Grid, got.Cell, tt.want.Grid, tt.want.Cell)
			}
		})
	}
}

func TestFormatMoves(t *testing.T) {
	if s := FormatMoves(nil); s != "empty" {
		t.Errorf("FormatMoves(nil)=%s, want=empty", s)
	}
	if s := FormatMoves(gridMoves(1, 0, 4)); s != "B3a3 B3b2" {
		t.Errorf("FormatMoves=%s, want=B3a3 B3b2", s)
	}
}

func TestParseTurn(t *testing.T) {
	for str, want := range map[string]TurnType{"x": CrossTurn, "X": CrossTurn, "o": NoughtTurn, " O": NoughtTurn} {
		got, err := ParseTurn(str)
		if err != nil || got != want {
			t.Errorf("ParseTurn(%q)=%s err=%v, want=%s", str, got, err, want)
		}
	}
	if _, err := ParseTurn("z"); err == nil {
		t.Error("ParseTurn(z) should fail")
	}
}
