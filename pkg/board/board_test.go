package board

import "testing"

func TestApplyUndoRoundTrip(t *testing.T) {
	var b Board
	moves := []Move{0, 10, 40, 80, 5, 63}
	players := []Player{X, O, X, O, X, O}

	before := b
	for i, m := range moves {
		b.Apply(m, players[i])
	}
	for i := len(moves) - 1; i >= 0; i-- {
		b.Undo(moves[i], players[i])
	}
	if b != before {
		t.Fatalf("Apply/Undo round trip failed: got %v, want %v", b, before)
	}
}

func TestGlobalStatusExactlyOne(t *testing.T) {
	var b Board
	results := map[Status]bool{}
	results[b.GlobalStatus()] = true
	if len(results) != 1 {
		t.Fatalf("expected exactly one status, got %v", results)
	}
	if b.GlobalStatus() != Undecided {
		t.Fatalf("empty board status = %v, want Undecided", b.GlobalStatus())
	}
}

func TestGlobalStatusMetaWin(t *testing.T) {
	var b Board
	// X wins local boards 0, 4, 8 outright (top-left, center, bottom-right),
	// completing the main diagonal at the meta level.
	winLocal := func(board int) uint16 {
		// X on cells 0,1,2 of that local board.
		return 1 + 3 + 9 // matches Pow3 weighting 1*3^0+1*3^1+1*3^2
	}
	b[0] = winLocal(0)
	b[4] = winLocal(4)
	b[8] = winLocal(8)
	if got := b.GlobalStatus(); got != XWon {
		t.Fatalf("GlobalStatus = %v, want XWon", got)
	}
}

func TestGlobalStatusDrawnLocalBoardsDoNotCount(t *testing.T) {
	var b Board
	// A drawn local board (no winner, full) must not count toward either
	// side's meta-line control.
	b[0] = encodeDraw()
	if s := b.LocalStatus(0); s != Draw {
		t.Fatalf("local board 0 status = %v, want Draw", s)
	}
	if got := b.GlobalStatus(); got != Undecided {
		t.Fatalf("GlobalStatus = %v, want Undecided (drawn board shouldn't resolve anything)", got)
	}
}

// encodeDraw returns the base-3 encoding of a full, non-winning local
// board: digits 1,2,1,2,2,1,1,1,2 row-major.
func encodeDraw() uint16 {
	digits := [9]uint16{1, 2, 1, 2, 2, 1, 1, 1, 2}
	var pow3 = [9]uint16{1, 3, 9, 27, 81, 243, 729, 2187, 6561}
	var m uint16
	for j := 0; j < 9; j++ {
		m += digits[j] * pow3[j]
	}
	return m
}

func TestStonesPlayed(t *testing.T) {
	var b Board
	if b.StonesPlayed() != 0 {
		t.Fatalf("empty board StonesPlayed = %d, want 0", b.StonesPlayed())
	}
	b.Apply(40, X)
	if b.StonesPlayed() != 1 {
		t.Fatalf("after one move StonesPlayed = %d, want 1", b.StonesPlayed())
	}
	b.Apply(27, O)
	if b.StonesPlayed() != 2 {
		t.Fatalf("after two moves StonesPlayed = %d, want 2", b.StonesPlayed())
	}
}

func TestOuterInnerOnMove(t *testing.T) {
	m := Move(40)
	if m.Outer() != 4 || m.Inner() != 4 {
		t.Fatalf("move 40: outer=%d inner=%d, want 4,4", m.Outer(), m.Inner())
	}
}
