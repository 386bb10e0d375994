package book

import (
	"testing"

	"github.com/nullmove/uttt-engine/pkg/board"
)

func TestOpeningMoveIsCenter(t *testing.T) {
	var b board.Board
	mv, ok := Lookup(&b, board.NoMove)
	if !ok {
		t.Fatalf("Lookup(NoMove) found no book move")
	}
	if mv != 40 {
		t.Fatalf("Lookup(NoMove) = %d, want 40", mv)
	}
}

func TestReplyToCenterOpening(t *testing.T) {
	var b board.Board
	b.Apply(40, board.X)
	mv, ok := Lookup(&b, board.Move(40))
	if !ok {
		t.Fatalf("Lookup after center opening found no book move")
	}
	if mv != 30 {
		t.Fatalf("Lookup after center opening = %d, want 30", mv)
	}
}

func TestCornerOfCornerRule(t *testing.T) {
	var b board.Board
	// Play a move whose inner index is a corner (0) and whose target local
	// board (0) is still empty.
	mv, ok := Lookup(&b, board.Move(0)) // row0 col0: outer0 inner0
	if !ok {
		t.Fatalf("Lookup found no book move for corner-of-corner case")
	}
	// Expect outer == inner == 0.
	if mv.Outer() != 0 || mv.Inner() != 0 {
		t.Fatalf("corner-of-corner move = %d (outer=%d inner=%d), want outer=inner=0", mv, mv.Outer(), mv.Inner())
	}
}

func TestNoBookMoveFallsThrough(t *testing.T) {
	var b board.Board
	b.Apply(4, board.X) // outer1 inner1: not a corner, not the opening
	if _, ok := Lookup(&b, board.Move(4)); ok {
		t.Fatalf("Lookup unexpectedly found a book move")
	}
}
