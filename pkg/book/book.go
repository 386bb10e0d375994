// Package book holds a handful of hard-coded opening responses, shortcutting
// the search for the first few moves of a game. The rules are derived from
// the position alone (stones played, last move) rather than from an
// explicit turn counter, matching the engine's (board, lastMove, side)
// contract.
package book

import (
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/tables"
)

// centerMove is the dead-center cell of the dead-center local board.
const centerMove board.Move = 40

// cornerReplyToCenter is the canned second move when the opponent opened
// with the center.
const cornerReplyToCenter board.Move = 30

// cornerCells are the inner indices that count as "a corner" of a local
// board: top-left, top-right, bottom-left, bottom-right.
var cornerCells = map[int]bool{0: true, 2: true, 6: true, 8: true}

// Lookup returns a book move for b given the last move played, and whether
// one applies. It never inspects side to move beyond what lastMove already
// implies, since the book only covers the opening.
func Lookup(b *board.Board, lastMove board.Move) (board.Move, bool) {
	if lastMove == board.NoMove {
		return centerMove, true
	}

	if b.StonesPlayed() == 1 && lastMove == centerMove {
		return cornerReplyToCenter, true
	}

	// Corner-of-corner: whenever the opponent's move forced us into a local
	// board whose index is itself a corner, and that local board is still
	// empty, reply in the matching corner cell of it. Carried over
	// verbatim from the reference engine; the strategic rationale for this
	// particular rule is not otherwise documented.
	forced := lastMove.Inner()
	if cornerCells[forced] && b[forced] == 0 {
		gridBit := 9*forced + forced
		return board.Move(tables.MoveFromGridBit[gridBit]), true
	}

	return board.NoMove, false
}
