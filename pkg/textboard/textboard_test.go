package textboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nullmove/uttt-engine/pkg/board"
)

func TestFprintContainsStones(t *testing.T) {
	var b board.Board
	b.Apply(40, board.X)
	b.Apply(0, board.O)

	var out bytes.Buffer
	Fprint(&out, &b)

	got := out.String()
	if !strings.Contains(got, "X") {
		t.Fatalf("output missing X stone:\n%s", got)
	}
	if !strings.Contains(got, "O") {
		t.Fatalf("output missing O stone:\n%s", got)
	}
}

func TestFprintEmptyBoardAllDots(t *testing.T) {
	var b board.Board
	var out bytes.Buffer
	Fprint(&out, &b)

	got := out.String()
	if strings.ContainsAny(got, "XO") {
		t.Fatalf("empty board rendering should contain no stones:\n%s", got)
	}
}

func TestDecodeCellDigit(t *testing.T) {
	var b board.Board
	b.Apply(40, board.X) // outer4 inner4
	if got := decodeCellDigit(b[4], 4); got != 1 {
		t.Fatalf("decodeCellDigit = %d, want 1 (X)", got)
	}
}
