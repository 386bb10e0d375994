package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/nullmove/uttt-engine/pkg/board"
)

// stubMover always returns the same canned move, for protocol-layer tests
// that don't need real search behavior.
type stubMover struct {
	move board.Move
	err  error
}

func (s *stubMover) BestMove(b *board.Board, lastMove board.Move, side board.Player) (board.Move, error) {
	return s.move, s.err
}

func TestStepFirstTurnSentinel(t *testing.T) {
	mover := &stubMover{move: 40}
	in := strings.NewReader("-1 -1\n0\n")
	var out bytes.Buffer

	loop := New(mover, board.X, in, &out)
	if err := loop.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if got := out.String(); got != "4 4\n" {
		t.Fatalf("output = %q, want %q", got, "4 4\n")
	}
}

func TestStepAppliesOpponentMove(t *testing.T) {
	mover := &stubMover{move: 30}
	// Opponent played row 4 col 4 (move 40), no valid actions follow.
	in := strings.NewReader("4 4\n0\n")
	var out bytes.Buffer

	loop := New(mover, board.O, in, &out)
	if err := loop.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if loop.last != 30 {
		t.Fatalf("loop.last = %d, want 30", loop.last)
	}
	if got := out.String(); got != "3 3\n" {
		t.Fatalf("output = %q, want %q", got, "3 3\n")
	}
}

func TestStepDiscardsValidActions(t *testing.T) {
	mover := &stubMover{move: 0}
	in := strings.NewReader("-1 -1\n2\n0 0\n1 1\n")
	var out bytes.Buffer

	loop := New(mover, board.X, in, &out)
	if err := loop.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
}

func TestStepPropagatesEOF(t *testing.T) {
	mover := &stubMover{move: 0}
	in := strings.NewReader("")
	var out bytes.Buffer

	loop := New(mover, board.X, in, &out)
	if err := loop.Step(); err != io.EOF {
		t.Fatalf("Step error = %v, want io.EOF", err)
	}
}
